package browser

// JS snippets the rod driver evaluates. Each is a function expression per
// rod's EvalOptions contract; results come back as JSON values.

// scrollPositionJS reports the window scroll offset and the maximum
// scrollable offset.
const scrollPositionJS = `() => {
	const doc = document.documentElement;
	const max = Math.max(0, (doc ? doc.scrollHeight : 0) - window.innerHeight);
	return { y: Math.round(window.scrollY), max: Math.round(max) };
}`

// scrollByJS scrolls vertically and returns the resulting scroll Y.
const scrollByJS = `(delta) => {
	window.scrollBy(0, delta);
	return Math.round(window.scrollY);
}`

// timingJS reads load metrics from the Performance API. Values are -1 when
// the browser has nothing to report (e.g. the load event has not fired yet).
const timingJS = `() => {
	let loadMs = -1, firstPaintMs = -1;
	try {
		const nav = performance.getEntriesByType('navigation')[0];
		if (nav && nav.loadEventEnd > 0) {
			loadMs = Math.round(nav.loadEventEnd - nav.startTime);
		}
	} catch (e) {}
	try {
		for (const p of performance.getEntriesByType('paint')) {
			if (p.name === 'first-contentful-paint' || (p.name === 'first-paint' && firstPaintMs < 0)) {
				firstPaintMs = Math.round(p.startTime);
			}
		}
	} catch (e) {}
	return { loadMs: loadMs, firstPaintMs: firstPaintMs };
}`

// outlineJS renders visible headings and interactive elements as one line
// each: tag, best-effort selector, and trimmed text. The model navigates by
// these selectors, so they favor stability (id > name > nth-of-type).
const outlineJS = `(maxElements) => {
	const lines = [];
	const seen = new Set();
	const visible = (el) => {
		const r = el.getBoundingClientRect();
		if (r.width < 2 || r.height < 2) return false;
		const s = window.getComputedStyle(el);
		return s.visibility !== 'hidden' && s.display !== 'none';
	};
	const selectorFor = (el) => {
		if (el.id) return '#' + CSS.escape(el.id);
		const tag = el.tagName.toLowerCase();
		if (el.name) return tag + '[name="' + el.name + '"]';
		const aria = el.getAttribute('aria-label');
		if (aria) return tag + '[aria-label="' + aria.replace(/"/g, '\\"') + '"]';
		const parent = el.parentElement;
		if (!parent) return tag;
		const peers = Array.from(parent.querySelectorAll(':scope > ' + tag));
		const idx = peers.indexOf(el) + 1;
		return tag + ':nth-of-type(' + idx + ')';
	};
	const textOf = (el) => {
		let t = (el.innerText || el.value || el.placeholder || el.getAttribute('aria-label') || '').trim();
		t = t.replace(/\s+/g, ' ');
		return t.length > 80 ? t.slice(0, 77) + '...' : t;
	};
	const sel = 'h1, h2, h3, a[href], button, input, select, textarea, [role="button"], [role="link"], [role="tab"], [onclick]';
	for (const el of document.querySelectorAll(sel)) {
		if (lines.length >= maxElements) break;
		if (!visible(el)) continue;
		const line = '<' + el.tagName.toLowerCase() + '> ' + selectorFor(el) + ' "' + textOf(el) + '"';
		if (seen.has(line)) continue;
		seen.add(line);
		lines.push(line);
	}
	return lines.join('\n');
}`

// pageTextJS returns the visible body text, capped at maxBytes.
const pageTextJS = `(maxBytes) => {
	const t = (document.body && document.body.innerText) || '';
	return t.length > maxBytes ? t.slice(0, maxBytes) : t;
}`

// selectOptionJS sets a <select> value (matching by value then by label) and
// dispatches input/change so framework listeners fire.
const selectOptionJS = `(selector, value) => {
	const el = document.querySelector(selector);
	if (!el) return { ok: false, reason: 'not found' };
	if (el.tagName.toLowerCase() !== 'select') return { ok: false, reason: 'not a select' };
	let matched = false;
	for (const opt of el.options) {
		if (opt.value === value || opt.label === value || opt.text.trim() === value) {
			el.value = opt.value;
			matched = true;
			break;
		}
	}
	if (!matched) return { ok: false, reason: 'no matching option' };
	el.dispatchEvent(new Event('input', { bubbles: true }));
	el.dispatchEvent(new Event('change', { bubbles: true }));
	return { ok: true };
}`

// existsJS probes a selector without waiting.
const existsJS = `(selector) => {
	try {
		return document.querySelector(selector) !== null;
	} catch (e) {
		return false;
	}
}`

// clickTextButtonJS clicks the first visible button-like element whose text
// matches one of the given lowercase phrases. Used by consent dismissal.
const clickTextButtonJS = `(phrases) => {
	const candidates = document.querySelectorAll('button, [role="button"], a, input[type="button"], input[type="submit"]');
	for (const el of candidates) {
		const r = el.getBoundingClientRect();
		if (r.width < 2 || r.height < 2) continue;
		const t = ((el.innerText || el.value || '') + '').trim().toLowerCase();
		if (!t || t.length > 40) continue;
		for (const phrase of phrases) {
			if (t === phrase || t.startsWith(phrase)) {
				el.click();
				return true;
			}
		}
	}
	return false;
}`
