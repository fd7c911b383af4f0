package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// InstructorName is the fixed identity owning the instructor dungeon.
const InstructorName = "Instructor"

// DungeonSlots is the fixed size of a challenge question set.
const DungeonSlots = 5

const (
	MimeImage = "image/"
)
