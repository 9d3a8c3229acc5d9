// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "insight_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"universal", "persona_specific", "comparative", "recommendation"}},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "severity", Type: field.TypeString, Nullable: true},
		{Name: "impact", Type: field.TypeString, Nullable: true},
		{Name: "effort", Type: field.TypeString, Nullable: true},
		{Name: "personas_affected", Type: field.TypeJSON, Nullable: true},
		{Name: "evidence", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "rank", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "study_id", Type: field.TypeString},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "insights_studies_insights",
				Columns:    []*schema.Column{InsightsColumns[11]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "insight_study_id_rank",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[11], InsightsColumns[9]},
			},
		},
	}
	// IssuesColumns holds the columns for the "issues" table.
	IssuesColumns = []*schema.Column{
		{Name: "issue_id", Type: field.TypeString, Unique: true},
		{Name: "element", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "major", "minor", "enhancement"}, Default: "minor"},
		{Name: "issue_type", Type: field.TypeEnum, Enums: []string{"ux", "accessibility", "error", "performance"}, Default: "ux"},
		{Name: "heuristic", Type: field.TypeString, Nullable: true},
		{Name: "wcag_criterion", Type: field.TypeString, Nullable: true},
		{Name: "recommendation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "page_url", Type: field.TypeString, Nullable: true},
		{Name: "times_seen", Type: field.TypeInt, Default: 1},
		{Name: "is_regression", Type: field.TypeBool, Default: false},
		{Name: "priority_score", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "study_id", Type: field.TypeString},
	}
	// IssuesTable holds the schema information for the "issues" table.
	IssuesTable = &schema.Table{
		Name:       "issues",
		Columns:    IssuesColumns,
		PrimaryKey: []*schema.Column{IssuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "issues_sessions_issues",
				Columns:    []*schema.Column{IssuesColumns[13]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "issues_steps_issues",
				Columns:    []*schema.Column{IssuesColumns[14]},
				RefColumns: []*schema.Column{StepsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "issues_studies_issues",
				Columns:    []*schema.Column{IssuesColumns[15]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "issue_study_id_severity",
				Unique:  false,
				Columns: []*schema.Column{IssuesColumns[15], IssuesColumns[3]},
			},
			{
				Name:    "issue_study_id_priority_score",
				Unique:  false,
				Columns: []*schema.Column{IssuesColumns[15], IssuesColumns[11]},
			},
			{
				Name:    "issue_page_url",
				Unique:  false,
				Columns: []*schema.Column{IssuesColumns[8]},
			},
		},
	}
	// PersonasColumns holds the columns for the "personas" table.
	PersonasColumns = []*schema.Column{
		{Name: "persona_id", Type: field.TypeString, Unique: true},
		{Name: "template_id", Type: field.TypeString, Nullable: true},
		{Name: "profile", Type: field.TypeJSON},
		{Name: "model_choice", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "study_id", Type: field.TypeString},
	}
	// PersonasTable holds the schema information for the "personas" table.
	PersonasTable = &schema.Table{
		Name:       "personas",
		Columns:    PersonasColumns,
		PrimaryKey: []*schema.Column{PersonasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "personas_studies_personas",
				Columns:    []*schema.Column{PersonasColumns[5]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "persona_study_id",
				Unique:  false,
				Columns: []*schema.Column{PersonasColumns[5]},
			},
		},
	}
	// SchedulesColumns holds the columns for the "schedules" table.
	SchedulesColumns = []*schema.Column{
		{Name: "schedule_id", Type: field.TypeString, Unique: true},
		{Name: "cron_expr", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused"}, Default: "active"},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "study_id", Type: field.TypeString},
	}
	// SchedulesTable holds the schema information for the "schedules" table.
	SchedulesTable = &schema.Table{
		Name:       "schedules",
		Columns:    SchedulesColumns,
		PrimaryKey: []*schema.Column{SchedulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "schedules_studies_schedules",
				Columns:    []*schema.Column{SchedulesColumns[8]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "schedule_status_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[2], SchedulesColumns[3]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "complete", "failed", "gave_up"}, Default: "pending"},
		{Name: "total_steps", Type: field.TypeInt, Default: 0},
		{Name: "task_completed", Type: field.TypeBool, Default: false},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "emotional_arc", Type: field.TypeJSON, Nullable: true},
		{Name: "ux_score", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "persona_id", Type: field.TypeString},
		{Name: "study_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_personas_sessions",
				Columns:    []*schema.Column{SessionsColumns[11]},
				RefColumns: []*schema.Column{PersonasColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "sessions_studies_sessions",
				Columns:    []*schema.Column{SessionsColumns[12]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "sessions_tasks_sessions",
				Columns:    []*schema.Column{SessionsColumns[13]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_persona_id_task_id",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[11], SessionsColumns[13]},
			},
			{
				Name:    "session_study_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[12], SessionsColumns[1]},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "page_url", Type: field.TypeString},
		{Name: "page_title", Type: field.TypeString, Nullable: true},
		{Name: "screenshot_ref", Type: field.TypeString, Nullable: true},
		{Name: "think_aloud", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "task_progress", Type: field.TypeInt, Default: 0},
		{Name: "emotional_state", Type: field.TypeEnum, Enums: []string{"curious", "confident", "confused", "frustrated", "anxious", "satisfied", "neutral"}, Default: "neutral"},
		{Name: "click_x", Type: field.TypeInt, Nullable: true},
		{Name: "click_y", Type: field.TypeInt, Nullable: true},
		{Name: "viewport_w", Type: field.TypeInt, Nullable: true},
		{Name: "viewport_h", Type: field.TypeInt, Nullable: true},
		{Name: "scroll_y", Type: field.TypeInt, Nullable: true},
		{Name: "max_scroll_y", Type: field.TypeInt, Nullable: true},
		{Name: "load_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "first_paint_ms", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_sessions_steps",
				Columns:    []*schema.Column{StepsColumns[19]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_session_id_step_number",
				Unique:  true,
				Columns: []*schema.Column{StepsColumns[19], StepsColumns[1]},
			},
		},
	}
	// StudiesColumns holds the columns for the "studies" table.
	StudiesColumns = []*schema.Column{
		{Name: "study_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "starting_path", Type: field.TypeString, Default: "/"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"setup", "running", "analyzing", "complete", "failed"}, Default: "setup"},
		{Name: "browser_mode", Type: field.TypeEnum, Nullable: true, Enums: []string{"local", "cloud"}},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "overall_score", Type: field.TypeInt, Nullable: true},
		{Name: "executive_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cost_breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudiesTable holds the schema information for the "studies" table.
	StudiesTable = &schema.Table{
		Name:       "studies",
		Columns:    StudiesColumns,
		PrimaryKey: []*schema.Column{StudiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "study_status",
				Unique:  false,
				Columns: []*schema.Column{StudiesColumns[3]},
			},
			{
				Name:    "study_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudiesColumns[3], StudiesColumns[11]},
			},
		},
	}
	// StudyJobsColumns holds the columns for the "study_jobs" table.
	StudyJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "browser_mode", Type: field.TypeEnum, Nullable: true, Enums: []string{"local", "cloud"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "claimed", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "timeout_seconds", Type: field.TypeInt, Default: 600},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "study_id", Type: field.TypeString},
	}
	// StudyJobsTable holds the schema information for the "study_jobs" table.
	StudyJobsTable = &schema.Table{
		Name:       "study_jobs",
		Columns:    StudyJobsColumns,
		PrimaryKey: []*schema.Column{StudyJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "study_jobs_studies_jobs",
				Columns:    []*schema.Column{StudyJobsColumns[12]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studyjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyJobsColumns[2], StudyJobsColumns[10]},
			},
			{
				Name:    "studyjob_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{StudyJobsColumns[2], StudyJobsColumns[8]},
			},
			{
				Name:    "studyjob_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyJobsColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'pending'",
				},
			},
			{
				Name:    "studyjob_study_id",
				Unique:  true,
				Columns: []*schema.Column{StudyJobsColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'claimed', 'running')",
				},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "study_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_studies_tasks",
				Columns:    []*schema.Column{TasksColumns[4]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_study_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InsightsTable,
		IssuesTable,
		PersonasTable,
		SchedulesTable,
		SessionsTable,
		StepsTable,
		StudiesTable,
		StudyJobsTable,
		TasksTable,
	}
)

func init() {
	InsightsTable.ForeignKeys[0].RefTable = StudiesTable
	IssuesTable.ForeignKeys[0].RefTable = SessionsTable
	IssuesTable.ForeignKeys[1].RefTable = StepsTable
	IssuesTable.ForeignKeys[2].RefTable = StudiesTable
	PersonasTable.ForeignKeys[0].RefTable = StudiesTable
	SchedulesTable.ForeignKeys[0].RefTable = StudiesTable
	SessionsTable.ForeignKeys[0].RefTable = PersonasTable
	SessionsTable.ForeignKeys[1].RefTable = StudiesTable
	SessionsTable.ForeignKeys[2].RefTable = TasksTable
	StepsTable.ForeignKeys[0].RefTable = SessionsTable
	StudyJobsTable.ForeignKeys[0].RefTable = StudiesTable
	TasksTable.ForeignKeys[0].RefTable = StudiesTable
}
