package services

// PhaseTemplate is one entry of an ordered phase-duration template.
type PhaseTemplate struct {
	Name         string
	Description  string
	DurationDays int
	Color        string
}

// SABuildPhasesTemplate is the standard phase sequence for a single-storey
// SA residential build, roughly 32 weeks end to end.
var SABuildPhasesTemplate = []PhaseTemplate{
	{"Pre-construction", "Plan approval, NHBRC enrolment, contractor appointment", 21, "#8b5cf6"},
	{"Site Preparation", "Site clearing, setting out, temporary services", 10, "#f59e0b"},
	{"Foundations", "Excavation, foundation concrete, DPC, backfill", 18, "#f97316"},
	{"Floor Slab", "Sub-base preparation, reinforcement, concrete pour", 10, "#ef4444"},
	{"Brickwork / Structure", "External walls, internal walls, lintels, ring beam", 35, "#3b82f6"},
	{"Roof Structure", "Roof trusses, roof sheeting/tiles, ridging, fascia", 18, "#14b8a6"},
	{"Plumbing First Fix", "Drainage, water supply rough-in", 10, "#a855f7"},
	{"Electrical First Fix", "Conduit, wiring rough-in, DB box", 10, "#eab308"},
	{"Plastering", "Internal plaster, external plaster/render", 18, "#6366f1"},
	{"Waterproofing", "Wet areas, external walls", 7, "#06b6d4"},
	{"Floor Screeds & Tiling", "Screeds, floor tiling, wall tiling", 18, "#10b981"},
	{"Plumbing Second Fix", "Fixtures, geyser, taps", 7, "#a855f7"},
	{"Electrical Second Fix", "Switches, plugs, light fittings, DB connections", 7, "#eab308"},
	{"Joinery & Carpentry", "Doors, frames, built-in cupboards, skirting", 10, "#92400e"},
	{"Painting", "Internal painting, external painting", 18, "#22c55e"},
	{"External Works", "Driveway, paving, landscaping, boundary wall", 18, "#84cc16"},
	{"Snag List & Handover", "Defect inspection, remedial work, NHBRC inspection, occupancy certificate", 10, "#059669"},
}
