package collision

// ObjectType tags a footprint with the category of the object that owns it.
// The set is closed; the conflict table below must cover every pair.
type ObjectType string

// Object types
const (
	ObjectTypeTerrain  ObjectType = "terrain"
	ObjectTypeWall     ObjectType = "wall"
	ObjectTypeStreet   ObjectType = "street"
	ObjectTypeBuilding ObjectType = "building"
)

// AllObjectTypes lists every member of the closed type set.
var AllObjectTypes = []ObjectType{
	ObjectTypeTerrain,
	ObjectTypeWall,
	ObjectTypeStreet,
	ObjectTypeBuilding,
}

// conflictTable is the fixed conflict policy between object types.
// Buildings conflict with everything, including other buildings. Distinct
// types always conflict. Same-type overlap is allowed for terrain features
// (they merge visually), wall segments (joints touch at corners), and
// streets (they join at intersections).
var conflictTable = map[ObjectType]map[ObjectType]bool{
	ObjectTypeTerrain: {
		ObjectTypeTerrain:  false,
		ObjectTypeWall:     true,
		ObjectTypeStreet:   true,
		ObjectTypeBuilding: true,
	},
	ObjectTypeWall: {
		ObjectTypeTerrain:  true,
		ObjectTypeWall:     false,
		ObjectTypeStreet:   true,
		ObjectTypeBuilding: true,
	},
	ObjectTypeStreet: {
		ObjectTypeTerrain:  true,
		ObjectTypeWall:     true,
		ObjectTypeStreet:   false,
		ObjectTypeBuilding: true,
	},
	ObjectTypeBuilding: {
		ObjectTypeTerrain:  true,
		ObjectTypeWall:     true,
		ObjectTypeStreet:   true,
		ObjectTypeBuilding: true,
	},
}

// Conflicts reports whether two object types are disallowed to overlap.
// Unknown types conflict with everything, so a typo fails closed.
func Conflicts(a, b ObjectType) bool {
	row, ok := conflictTable[a]
	if !ok {
		return true
	}
	conflicts, ok := row[b]
	if !ok {
		return true
	}
	return conflicts
}
