package models

import "fmt"

// EntityType identifies a supported import target. Keeping this a closed
// enum means an unsupported table name fails once at the request boundary
// instead of producing a failure row per record.
type EntityType int

const (
	EntityProjects EntityType = iota
	EntityAccounts
)

func (t EntityType) String() string {
	switch t {
	case EntityProjects:
		return "projects"
	case EntityAccounts:
		return "accounts"
	}
	return "unknown"
}

// ParseEntityType maps a wire table name onto the enum.
func ParseEntityType(name string) (EntityType, error) {
	switch name {
	case "projects":
		return EntityProjects, nil
	case "accounts":
		return EntityAccounts, nil
	}
	return 0, fmt.Errorf("unsupported table: %s", name)
}
