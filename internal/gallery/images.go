package gallery

// DefaultBasePath is where the bundled exterior renders live
const DefaultBasePath = "resources/image/gaikan/"

// DefaultImages is the bundled exterior render list, in presentation order
var DefaultImages = []string{
	"パース外観　28-40-N-12-001.jpg",
	"パース外観　28-45-E-12-002.jpg",
	"パース外観　28-50-S-12-003.jpg",
	"パース外観　28-54-N-12-004.jpg",
	"パース外観　28-59-E-11-005.jpg",
	"パース外観　28-63-S-22-006.jpg",
	"パース外観　28-68-N-22-007.jpg",
	"パース外観　30-40-S-22-008.jpg",
	"パース外観　30-45-S-12-009.jpg",
	"パース外観　30-50-W-11-010.jpg",
	"パース外観　30-50-S-22-011.jpg",
	"パース外観　30-54-N-12-012.jpg",
	"パース外観　30-54-E-22-013.jpg",
	"パース外観　30-54-S-12-014.jpg",
	"パース外観　30-59-N-22-015.jpg",
	"パース外観　30-63-W-12-016.jpg",
	"パース外観　30-63-S-22-017.jpg",
	"パース外観　30-68-N-12-018.jpg",
	"パース外観　33-40-N-22-021.jpg",
	"パース外観　33-45-W-22-022.jpg",
	"パース外観　33-50-S-22-023.jpg",
	"パース外観　33-50-N-22-024.jpg",
	"パース外観　33-50-W-12-025.jpg",
	"パース外観　33-54-S-22-026.jpg",
	"パース外観　33-59-N-11-027.jpg",
	"パース外観　33-59-E-12-028.jpg",
	"パース外観　33-63-S-22-029.jpg",
	"パース外観　33-63-N-22-030.jpg",
	"パース外観　33-68-E-11-031.jpg",
	"パース外観　33-72-S-12-032.jpg",
	"パース外観　35-72-N-12-033.jpg",
	"パース外観　35-54-N-12-034.jpg",
	"パース外観　35-59-E-22-035.jpg",
	"パース外観　35-63-S-11-036.jpg",
	"パース外観　35-68-N-22-037.jpg",
	"パース外観　35-72-E-22-038.jpg",
	"パース外観　35-77-S-22-039.jpg",
	"外観.jpg",
	"外観2.jpg",
	"外観3.jpg",
}
