package model

import "time"

// Actor represents a performer registered with the agency.  An actor may
// appear in many movies through Performance records.  This struct
// corresponds to a row in the `actors` table.  JSON tags are omitted
// because handlers define separate response types that expose only the
// public field set (id, name, gender, age).
//
// Fields:
//  ID        – primary key identifier.
//  Name      – actor name (1–120 characters).
//  Gender    – free-text gender (1–120 characters).
//  Age       – age in years (1–99).
//  CreatedAt – timestamp when the row was created.
//  UpdatedAt – timestamp of last update.
type Actor struct {
    ID        uint64    // actors.id
    Name      string    // actors.name
    Gender    string    // actors.gender
    Age       int       // actors.age
    CreatedAt time.Time // actors.created_at
    UpdatedAt time.Time // actors.updated_at
}

// ActorPatch describes a partial update to an actor.  Each field is a
// pointer so that nil means "leave unchanged".  Updates are applied
// field-by-field; fields a client never sent keep their prior values.
type ActorPatch struct {
    Name   *string
    Gender *string
    Age    *int
}
