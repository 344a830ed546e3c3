package services

import "buildtrack/models"

// BOMTemplateItem is one row of the standard bill-of-materials template.
type BOMTemplateItem struct {
	Category        models.BOMCategory
	ItemNumber      string
	Description     string
	Unit            string
	DefaultQuantity float64
	EstimatedRate   float64
}

// NHBRCBOMTemplate is the standard bill for a typical single-storey SA
// residential build. Quantities assume roughly a 150 m² dwelling; rates are
// planning-level estimates in ZAR and are expected to be edited per project.
var NHBRCBOMTemplate = []BOMTemplateItem{
	// Preliminaries
	{models.CategoryPreliminaries, "P-001", "Building plan approval fees", "item", 1, 15000},
	{models.CategoryPreliminaries, "P-002", "NHBRC enrolment fee", "item", 1, 8500},
	{models.CategoryPreliminaries, "P-003", "Site establishment and temporary services", "item", 1, 25000},
	{models.CategoryPreliminaries, "P-004", "Builder's all-risk insurance", "item", 1, 12000},
	{models.CategoryPreliminaries, "P-005", "Health and safety file", "item", 1, 5000},
	{models.CategoryPreliminaries, "P-006", "Setting out by surveyor", "item", 1, 8000},
	{models.CategoryPreliminaries, "P-007", "Temporary fencing and site security", "item", 1, 15000},

	// Foundations
	{models.CategoryFoundations, "F-001", "Excavation for strip foundations", "m3", 35, 350},
	{models.CategoryFoundations, "F-002", "Anti-termite treatment to foundation", "m2", 150, 45},
	{models.CategoryFoundations, "F-003", "Concrete strip foundations (25 MPa)", "m3", 18, 2800},
	{models.CategoryFoundations, "F-004", "Steel reinforcement to foundations", "kg", 800, 22},
	{models.CategoryFoundations, "F-005", "Damp proof course (DPC) 375mm wide", "m", 80, 65},
	{models.CategoryFoundations, "F-006", "Formwork to foundations", "m2", 40, 180},
	{models.CategoryFoundations, "F-007", "Backfill and compaction", "m3", 20, 280},
	{models.CategoryFoundations, "F-008", "Surface bed concrete (25 MPa) 100mm thick", "m2", 150, 320},
	{models.CategoryFoundations, "F-009", "Damp proof membrane under surface bed", "m2", 150, 35},

	// Structural
	{models.CategoryStructural, "S-001", "External walls - 230mm brick", "m2", 180, 650},
	{models.CategoryStructural, "S-002", "Internal walls - 115mm brick", "m2", 120, 380},
	{models.CategoryStructural, "S-003", "Precast concrete lintels", "m", 40, 450},
	{models.CategoryStructural, "S-004", "Reinforced concrete ring beam", "m", 80, 380},
	{models.CategoryStructural, "S-005", "Concrete columns 230x230mm", "m", 12, 1200},
	{models.CategoryStructural, "S-006", "Steel reinforcement to structural elements", "kg", 1200, 22},
	{models.CategoryStructural, "S-007", "Expansion joints", "m", 8, 250},

	// Roofing
	{models.CategoryRoofing, "R-001", "Roof trusses (engineered timber)", "m2", 170, 380},
	{models.CategoryRoofing, "R-002", "Concrete roof tiles", "m2", 170, 220},
	{models.CategoryRoofing, "R-003", "Ridging tiles", "m", 15, 280},
	{models.CategoryRoofing, "R-004", "Fascia boards (fibre cement)", "m", 50, 180},
	{models.CategoryRoofing, "R-005", "Barge boards", "m", 20, 200},
	{models.CategoryRoofing, "R-006", "Gutters and downpipes (PVC)", "m", 40, 150},
	{models.CategoryRoofing, "R-007", "Waterproofing membrane under tiles", "m2", 170, 45},
	{models.CategoryRoofing, "R-008", "Roof insulation (135mm Think Pink)", "m2", 150, 95},

	// Plumbing
	{models.CategoryPlumbing, "PL-001", "Water supply pipework (complete)", "item", 1, 18000},
	{models.CategoryPlumbing, "PL-002", "Drainage pipework (110mm PVC)", "m", 30, 350},
	{models.CategoryPlumbing, "PL-003", "Geyser 200L (installed)", "no", 1, 12000},
	{models.CategoryPlumbing, "PL-004", "Toilet suite (complete)", "no", 3, 4500},
	{models.CategoryPlumbing, "PL-005", "Basin with mixer tap", "no", 3, 3500},
	{models.CategoryPlumbing, "PL-006", "Bath (acrylic, installed)", "no", 2, 5500},
	{models.CategoryPlumbing, "PL-007", "Shower complete with mixer", "no", 2, 6000},
	{models.CategoryPlumbing, "PL-008", "Kitchen sink (stainless steel, double bowl)", "no", 1, 4000},
	{models.CategoryPlumbing, "PL-009", "Solar geyser provision (pipework only)", "item", 1, 8000},

	// Electrical
	{models.CategoryElectrical, "E-001", "Distribution board (complete)", "no", 1, 8500},
	{models.CategoryElectrical, "E-002", "Circuit breakers and earth leakage", "item", 1, 4500},
	{models.CategoryElectrical, "E-003", "Power points (double socket)", "no", 25, 850},
	{models.CategoryElectrical, "E-004", "Light points (ceiling)", "no", 20, 650},
	{models.CategoryElectrical, "E-005", "Geyser element circuit", "item", 1, 3500},
	{models.CategoryElectrical, "E-006", "Stove connection point", "no", 1, 3000},
	{models.CategoryElectrical, "E-007", "Prepaid meter provision", "item", 1, 5000},
	{models.CategoryElectrical, "E-008", "TV points", "no", 4, 550},
	{models.CategoryElectrical, "E-009", "Data/network points (CAT6)", "no", 4, 750},
	{models.CategoryElectrical, "E-010", "Outdoor light points", "no", 6, 750},

	// Internal finishes
	{models.CategoryFinishesInternal, "FI-001", "Internal wall plastering", "m2", 350, 85},
	{models.CategoryFinishesInternal, "FI-002", "Ceiling plastering (skim coat)", "m2", 150, 75},
	{models.CategoryFinishesInternal, "FI-003", "Floor screed (40mm)", "m2", 150, 95},
	{models.CategoryFinishesInternal, "FI-004", "Floor tiling (ceramic)", "m2", 120, 450},
	{models.CategoryFinishesInternal, "FI-005", "Wall tiling (bathroom/kitchen)", "m2", 50, 480},
	{models.CategoryFinishesInternal, "FI-006", "Internal painting (PVA, 2 coats)", "m2", 450, 45},
	{models.CategoryFinishesInternal, "FI-007", "Enamel paint to doors and frames", "no", 12, 650},
	{models.CategoryFinishesInternal, "FI-008", "Internal doors (hollow core, hung)", "no", 10, 2800},
	{models.CategoryFinishesInternal, "FI-009", "Built-in cupboards (bedroom)", "m", 8, 4500},
	{models.CategoryFinishesInternal, "FI-010", "Kitchen cupboards and countertops", "item", 1, 65000},
	{models.CategoryFinishesInternal, "FI-011", "Skirting (pine, painted)", "m", 100, 85},

	// External finishes
	{models.CategoryFinishesExternal, "FE-001", "External wall plastering", "m2", 200, 95},
	{models.CategoryFinishesExternal, "FE-002", "External painting (acrylic, 2 coats)", "m2", 200, 55},
	{models.CategoryFinishesExternal, "FE-003", "Aluminium window frames (installed)", "m2", 25, 2800},
	{models.CategoryFinishesExternal, "FE-004", "External doors (solid, hung)", "no", 3, 6500},
	{models.CategoryFinishesExternal, "FE-005", "Garage door (sectional, automated)", "no", 1, 18000},
	{models.CategoryFinishesExternal, "FE-006", "Waterproofing to external walls", "m2", 200, 65},

	// External works
	{models.CategoryExternalWorks, "EW-001", "Driveway (concrete paving)", "m2", 40, 450},
	{models.CategoryExternalWorks, "EW-002", "Pathways and paving", "m2", 30, 380},
	{models.CategoryExternalWorks, "EW-003", "Stormwater drainage", "m", 20, 450},
	{models.CategoryExternalWorks, "EW-004", "Boundary wall (1.8m brick)", "m", 60, 2200},
	{models.CategoryExternalWorks, "EW-005", "Palisade fencing", "m", 30, 1200},
	{models.CategoryExternalWorks, "EW-006", "Gate (sliding, automated)", "no", 1, 25000},
	{models.CategoryExternalWorks, "EW-007", "Landscaping and topsoil", "item", 1, 20000},

	// Provisional sums
	{models.CategoryProvisionalSums, "PS-001", "Unforeseen ground conditions", "prov", 1, 30000},
	{models.CategoryProvisionalSums, "PS-002", "Municipal water connection", "prov", 1, 15000},
	{models.CategoryProvisionalSums, "PS-003", "Municipal sewer connection", "prov", 1, 12000},
	{models.CategoryProvisionalSums, "PS-004", "Electricity connection (Eskom/Municipality)", "prov", 1, 25000},
	{models.CategoryProvisionalSums, "PS-005", "Occupancy certificate fees", "prov", 1, 5000},
	{models.CategoryProvisionalSums, "PS-006", "Professional fees (engineer, architect)", "prov", 1, 80000},
}
