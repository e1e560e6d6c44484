package jobs

// Job is a unit of background work run on a schedule
type Job interface {
	Name() string
	Run() error
}
