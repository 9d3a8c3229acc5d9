package util

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/pkg/models"
)

// Seed helpers build the study -> persona/task -> session row chains most
// integration tests need. Each returns the created entity and fails the test
// on error.

// SeedStudy creates a study in setup status.
func SeedStudy(t *testing.T, client *ent.Client, url string) *ent.Study {
	t.Helper()
	study, err := client.Study.Create().
		SetID(uuid.New().String()).
		SetURL(url).
		Save(context.Background())
	require.NoError(t, err)
	return study
}

// SeedPersona creates a persona with a plain desktop profile.
func SeedPersona(t *testing.T, client *ent.Client, studyID, name string) *ent.Persona {
	t.Helper()
	profile, err := models.PersonaProfile{
		Name:             name,
		TechLiteracy:     5,
		Patience:         5,
		ReadingSpeed:     5,
		Trust:            5,
		DevicePreference: models.DeviceDesktop,
	}.ToMap()
	require.NoError(t, err)

	persona, err := client.Persona.Create().
		SetID(uuid.New().String()).
		SetStudyID(studyID).
		SetProfile(profile).
		SetModelChoice("default").
		Save(context.Background())
	require.NoError(t, err)
	return persona
}

// SeedTask creates a task at the given order index.
func SeedTask(t *testing.T, client *ent.Client, studyID, description string, orderIndex int) *ent.Task {
	t.Helper()
	task, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetStudyID(studyID).
		SetDescription(description).
		SetOrderIndex(orderIndex).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

// SeedSession creates a pending session for the (persona, task) pair.
func SeedSession(t *testing.T, client *ent.Client, studyID, personaID, taskID string) *ent.Session {
	t.Helper()
	session, err := client.Session.Create().
		SetID(uuid.New().String()).
		SetStudyID(studyID).
		SetPersonaID(personaID).
		SetTaskID(taskID).
		Save(context.Background())
	require.NoError(t, err)
	return session
}

// SeedSessionChain creates study, one persona, one task, and the session
// joining them. Convenient for tests that only need a valid FK chain.
func SeedSessionChain(t *testing.T, client *ent.Client, url string) (*ent.Study, *ent.Persona, *ent.Task, *ent.Session) {
	t.Helper()
	study := SeedStudy(t, client, url)
	persona := SeedPersona(t, client, study.ID, "Test Persona")
	task := SeedTask(t, client, study.ID, "Find the pricing page", 0)
	session := SeedSession(t, client, study.ID, persona.ID, task.ID)
	return study, persona, task, session
}

// SeedStep creates one recorded step. screenshotRef and loadMs are optional
// (empty / zero to omit).
func SeedStep(t *testing.T, client *ent.Client, sessionID string, n int, pageURL, screenshotRef string, loadMs int) *ent.Step {
	t.Helper()
	progress := n * 10
	if progress > 100 {
		progress = 100
	}
	create := client.Step.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetStepNumber(n).
		SetPageURL(pageURL).
		SetPageTitle(fmt.Sprintf("Page %d", n)).
		SetThinkAloud("Looking around the page.").
		SetAction(models.Action{Type: models.ActionClick, Selector: "#next"}.ToMap()).
		SetConfidence(0.8).
		SetTaskProgress(progress).
		SetEmotionalState(step.EmotionalState(models.EmotionNeutral))
	if screenshotRef != "" {
		create.SetScreenshotRef(screenshotRef)
	}
	if loadMs > 0 {
		create.SetLoadTimeMs(loadMs)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}
