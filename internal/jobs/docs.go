// Package jobs provides scheduled background tasks for the label service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions
// with seconds) and managed through JobManager:
//
//	reaper, err := jobs.NewSessionReaperJob(reapHandler, "0 * * * * *", 30*time.Minute, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(reaper)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// SessionReaperJob closes label sessions idle for longer than the configured
// timeout, cancelling their pending loader and validator calls.
package jobs
