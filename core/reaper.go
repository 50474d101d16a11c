package core

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/endpointops/deploypkg/contracts"
)

// Reaper owns the run's transient resources: at most one mounted
// volume and one scratch directory. Release detaches before removing,
// tolerates every cleanup error, and runs at most once, so it is safe
// to invoke from both a defer and a signal trap.
type Reaper struct {
	mounter    contracts.DiskImageMounter
	filesystem contracts.Deleter

	mutex      sync.Mutex
	mountPoint string
	scratch    string
	released   bool
}

func NewReaper(mounter contracts.DiskImageMounter, filesystem contracts.Deleter) *Reaper {
	return &Reaper{mounter: mounter, filesystem: filesystem}
}

func (this *Reaper) TrackMount(mountPoint string) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	this.mountPoint = mountPoint
}

func (this *Reaper) TrackScratch(directory string) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	this.scratch = directory
}

// Release never returns an error: cleanup problems are logged as
// warnings so they cannot mask the reason the run ended.
func (this *Reaper) Release() {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	if this.released {
		return
	}
	this.released = true

	var problems error
	if this.mountPoint != "" {
		if err := this.mounter.Detach(this.mountPoint); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("detach %s: %w", this.mountPoint, err))
		}
		this.mountPoint = ""
	}
	if this.scratch != "" {
		if err := this.filesystem.RemoveAll(this.scratch); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("remove %s: %w", this.scratch, err))
		}
		this.scratch = ""
	}
	if problems != nil {
		log.Warnf("cleanup finished with problems: %v", problems)
	}
}
