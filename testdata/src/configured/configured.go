package configured

type Recorder struct{}

type Money struct{ cents int64 }

type Ring struct{ buf []byte }

var (
	rec   *Recorder // want `configured\.Recorder is known thread-safe`
	money Money     // want `configured\.Money is known thread-safe`
	ring  Ring      // want `configured\.Ring is known mutable`
)
