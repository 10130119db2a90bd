package game

// EntityID identifies a body in the physics world.
type EntityID uint64

// Category is a physics collision category bitmask.
type Category uint32

const (
	CategoryNone   Category = 0
	CategoryBall   Category = 1 << 0
	CategorySwitch Category = 1 << 1
)

type Vec struct {
	X float64
	Y float64
}

// Size is the bounding size of the view handed to the menu.
type Size struct {
	Width  int
	Height int
}

// World is the physics simulation the game drives. Y grows upward, so a
// negative gravity pulls bodies down.
type World interface {
	SetGravity(dy float64)
	AttachStatic(id EntityID, pos Vec, radius float64, category Category)
	AttachDynamic(id EntityID, pos Vec, radius float64, category, contact, collision Category)
	Remove(id EntityID)
}

// Store persists integers by key. Writes are fire-and-forget.
type Store interface {
	SetInt(key string, v int)
	Int(key string) int
}

// Navigator moves the application to its menu once a session ends.
type Navigator interface {
	PresentMenu(size Size)
}
