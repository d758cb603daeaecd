package model

import (
	"github.com/birdcall/birdcall/internal/core/entities/release"
)

const StatusOK = "ok"

// Status keeps the field order of the encoded document stable,
// so repeated responses are byte-identical.
type Status struct {
	Status    string `json:"status"     example:"ok"`
	Mode      string `json:"mode"       example:"production"`
	Version   string `json:"version"    example:"1.2.3"`
	GitSHA    string `json:"git_sha"    example:"abc123"`
	BuildTime string `json:"build_time" example:"2024-01-01T00:00:00Z"`
}

func NewStatusFromRelease(info release.Info) Status {
	return Status{
		Status:    StatusOK,
		Mode:      info.Mode,
		Version:   info.Version,
		GitSHA:    info.Commit,
		BuildTime: info.BuildTime,
	}
}
