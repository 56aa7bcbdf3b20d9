// Package schema validates decoded JSON payloads before any entity is
// touched.  Each mutating route names one operation kind; a payload either
// satisfies that kind's shape or the request is rejected as unprocessable.
// Validation never panics on malformed input — an absent, null or
// wrongly-typed body is simply an invalid verdict.
//
// The package also extracts typed values (Actor, MoviePatch, ...) from the
// raw map so that handlers and repositories never iterate arbitrary payload
// keys; partial updates are applied through explicit per-entity patch
// structs with one optional field per updatable attribute.
package schema

import (
    "math"
    "strconv"
    "time"

    "github.com/iliyamo/casting-agency/internal/model"
)

// Kind names one of the five operation shapes.
type Kind string

const (
    CreateActor       Kind = "create-actor"
    UpdateActor       Kind = "update-actor"
    CreateMovie       Kind = "create-movie"
    UpdateMovie       Kind = "update-movie"
    CreatePerformance Kind = "create-performance"
)

// ReleaseDateLayout is the only accepted release_date format, e.g.
// "2022-09-23T00:00:00.000Z".  The trailing Z is a literal, so values are
// interpreted as UTC.
const ReleaseDateLayout = "2006-01-02T15:04:05.000Z"

// Validate reports whether data satisfies the shape of the given kind.  A
// nil map (absent or malformed body) is invalid for every kind.  For the
// update kinds an empty object is valid and denotes a no-op update.
func Validate(kind Kind, data map[string]any) bool {
    switch kind {
    case CreateActor:
        _, ok := ActorFrom(data)
        return ok
    case UpdateActor:
        _, ok := ActorPatchFrom(data)
        return ok
    case CreateMovie:
        _, ok := MovieFrom(data)
        return ok
    case UpdateMovie:
        _, ok := MoviePatchFrom(data)
        return ok
    case CreatePerformance:
        _, ok := PerformanceFrom(data)
        return ok
    }
    return false
}

// ActorFrom checks a create-actor payload (name, gender and age all
// required) and returns the typed actor on success.
func ActorFrom(data map[string]any) (model.Actor, bool) {
    if data == nil {
        return model.Actor{}, false
    }
    name, ok := textField(data, "name")
    if !ok {
        return model.Actor{}, false
    }
    gender, ok := textField(data, "gender")
    if !ok {
        return model.Actor{}, false
    }
    age, ok := intField(data, "age", 1, 99)
    if !ok {
        return model.Actor{}, false
    }
    return model.Actor{Name: name, Gender: gender, Age: int(age)}, true
}

// ActorPatchFrom checks an update-actor payload where every field is
// optional.  Present fields must still satisfy the per-field constraints.
func ActorPatchFrom(data map[string]any) (model.ActorPatch, bool) {
    if data == nil {
        return model.ActorPatch{}, false
    }
    var p model.ActorPatch
    if _, present := data["name"]; present {
        name, ok := textField(data, "name")
        if !ok {
            return model.ActorPatch{}, false
        }
        p.Name = &name
    }
    if _, present := data["gender"]; present {
        gender, ok := textField(data, "gender")
        if !ok {
            return model.ActorPatch{}, false
        }
        p.Gender = &gender
    }
    if _, present := data["age"]; present {
        age, ok := intField(data, "age", 1, 99)
        if !ok {
            return model.ActorPatch{}, false
        }
        n := int(age)
        p.Age = &n
    }
    return p, true
}

// MovieFrom checks a create-movie payload (title and release_date both
// required).  The release date must parse in ReleaseDateLayout and lie
// strictly in the future at validation time.
func MovieFrom(data map[string]any) (model.Movie, bool) {
    if data == nil {
        return model.Movie{}, false
    }
    title, ok := textField(data, "title")
    if !ok {
        return model.Movie{}, false
    }
    release, ok := dateField(data, "release_date")
    if !ok {
        return model.Movie{}, false
    }
    return model.Movie{Title: title, ReleaseDate: release}, true
}

// MoviePatchFrom checks an update-movie payload where both fields are
// optional.
func MoviePatchFrom(data map[string]any) (model.MoviePatch, bool) {
    if data == nil {
        return model.MoviePatch{}, false
    }
    var p model.MoviePatch
    if _, present := data["title"]; present {
        title, ok := textField(data, "title")
        if !ok {
            return model.MoviePatch{}, false
        }
        p.Title = &title
    }
    if _, present := data["release_date"]; present {
        release, ok := dateField(data, "release_date")
        if !ok {
            return model.MoviePatch{}, false
        }
        p.ReleaseDate = &release
    }
    return p, true
}

// PerformanceFrom checks a create-performance payload.  Both identifiers
// are required and must be integers >= 1; whether they reference existing
// rows is the store's concern, not the schema's.
func PerformanceFrom(data map[string]any) (model.Performance, bool) {
    if data == nil {
        return model.Performance{}, false
    }
    actorID, ok := intField(data, "actor_id", 1, math.MaxInt64)
    if !ok {
        return model.Performance{}, false
    }
    movieID, ok := intField(data, "movie_id", 1, math.MaxInt64)
    if !ok {
        return model.Performance{}, false
    }
    return model.Performance{ActorID: uint64(actorID), MovieID: uint64(movieID)}, true
}

// textField extracts a required string field of 1..120 characters.
func textField(data map[string]any, key string) (string, bool) {
    s, ok := data[key].(string)
    if !ok {
        return "", false
    }
    if n := len([]rune(s)); n < 1 || n > 120 {
        return "", false
    }
    return s, true
}

// intField extracts an integer field within [min, max].  JSON numbers
// arrive as float64 and are accepted only when integral; numeric strings
// like "46" are accepted as well since clients routinely send ages quoted.
func intField(data map[string]any, key string, min, max int64) (int64, bool) {
    var n int64
    switch v := data[key].(type) {
    case float64:
        if v != math.Trunc(v) {
            return 0, false
        }
        n = int64(v)
    case int:
        n = int64(v)
    case int64:
        n = v
    case string:
        parsed, err := strconv.ParseInt(v, 10, 64)
        if err != nil {
            return 0, false
        }
        n = parsed
    default:
        return 0, false
    }
    if n < min || n > max {
        return 0, false
    }
    return n, true
}

// dateField extracts a release_date-style field: a string in
// ReleaseDateLayout whose value is strictly later than now.
func dateField(data map[string]any, key string) (time.Time, bool) {
    s, ok := data[key].(string)
    if !ok {
        return time.Time{}, false
    }
    t, err := time.Parse(ReleaseDateLayout, s)
    if err != nil {
        return time.Time{}, false
    }
    if !t.After(time.Now().UTC()) {
        return time.Time{}, false
    }
    return t, true
}
