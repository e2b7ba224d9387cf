package ports

// Repository is the composite interface implemented by the storage adapter
type Repository interface {
	ActivityReader
	ActivityWriter
	EventReader
	EventWriter
	WindowReader
	WindowWriter
	SessionizationReader
	SessionizationWriter
	GoalReader
	GoalWriter
	Close() error
}
