// Package workers runs background generation of derived media assets.
package workers

import (
	"context"
	"log"
	"sync"

	"github.com/hollis-git/lineagebackend/config"
	"github.com/hollis-git/lineagebackend/media"
	"github.com/hollis-git/lineagebackend/models"
)

type ThumbnailJob struct {
	Media *models.Media
}

// ThumbnailGenerator generates checksum-keyed thumbnails for media objects
// on a bounded queue of background workers. Jobs are deduplicated by media
// handle while pending.
type ThumbnailGenerator struct {
	JobQueue chan ThumbnailJob
	Config   config.Config
	Handler  media.Handler
	Wg       sync.WaitGroup
	StopChan chan struct{}
	Pending  map[string]bool
	Mutex    sync.Mutex
}

func NewThumbnailGenerator(cfg config.Config, handler media.Handler, queueSize, numWorkers int) *ThumbnailGenerator {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}

	gen := &ThumbnailGenerator{
		JobQueue: make(chan ThumbnailJob, queueSize),
		Config:   cfg,
		Handler:  handler,
		StopChan: make(chan struct{}),
		Pending:  make(map[string]bool),
	}

	gen.Wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go gen.worker(i)
	}
	log.Printf("started %d thumbnail worker(s) with queue size %d", numWorkers, queueSize)

	return gen
}

func (tg *ThumbnailGenerator) worker(id int) {
	defer tg.Wg.Done()
	log.Printf("thumbnail worker %d started", id)
	for {
		select {
		case job, ok := <-tg.JobQueue:
			if !ok {
				log.Printf("thumbnail worker %d stopping: job queue closed", id)
				return
			}
			tg.processJob(job)
			tg.Mutex.Lock()
			delete(tg.Pending, job.Media.Handle)
			tg.Mutex.Unlock()

		case <-tg.StopChan:
			log.Printf("thumbnail worker %d stopping: stop signal received", id)
			return
		}
	}
}

func (tg *ThumbnailGenerator) processJob(job ThumbnailJob) {
	obj := job.Media
	if obj.Checksum == "" {
		log.Printf("media %s has no checksum, skipping thumbnail generation", obj.Handle)
		return
	}
	if !media.IsRasterImage(obj.Path) {
		return
	}

	ctx := context.Background()
	reader, err := tg.Handler.Open(ctx, obj)
	if err != nil {
		log.Printf("ERROR opening media %s for thumbnail generation: %v", obj.Handle, err)
		return
	}
	defer reader.Close()

	savePath, err := media.GenerateThumbnail(reader, tg.Config.ThumbnailsPath, obj.Checksum, tg.Config.ThumbnailMaxSize)
	if err != nil {
		log.Printf("ERROR generating thumbnail for media %s: %v", obj.Handle, err)
		return
	}

	log.Printf("successfully generated thumbnail for media %s at %s", obj.Handle, savePath)
}

func (tg *ThumbnailGenerator) QueueJob(job ThumbnailJob) bool {
	tg.Mutex.Lock()
	if tg.Pending[job.Media.Handle] {
		tg.Mutex.Unlock()
		return false
	}

	tg.Pending[job.Media.Handle] = true
	tg.Mutex.Unlock()

	select {
	case tg.JobQueue <- job:
		return true
	default:
		log.Printf("WARNING: thumbnail job queue full, failed to queue job for media %s", job.Media.Handle)
		tg.Mutex.Lock()
		delete(tg.Pending, job.Media.Handle)
		tg.Mutex.Unlock()
		return false
	}
}

func (tg *ThumbnailGenerator) Stop() {
	log.Println("stopping thumbnail generator...")
	close(tg.StopChan)
	tg.Wg.Wait()
	log.Println("all thumbnail workers stopped")
}
