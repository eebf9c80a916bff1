package report

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"

	"gradereport/domain/core"
	"gradereport/domain/grades"
	"gradereport/internal"
	"gradereport/ports"
)

const outputFileMode = 0o644

// Artifact binds a renderer to its target file
type Artifact struct {
	Path     string
	Renderer ports.ReportRenderer
}

// Publisher writes a set of artifacts so that either all of them replace
// their targets or none does. Target directories must already exist.
type Publisher struct {
	artifacts []Artifact
	logger    *internal.Logger
}

// NewPublisher creates a publisher. A nil logger falls back to the default one.
func NewPublisher(logger *internal.Logger, artifacts ...Artifact) *Publisher {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Publisher{artifacts: artifacts, logger: logger}
}

type stagedFile struct {
	tempPath string
	artifact Artifact
}

// Publish renders every artifact into a temp file beside its target and
// renames them into place once all renders have succeeded
func (p *Publisher) Publish(averages *grades.AverageMap, highest *grades.HighestMap) error {
	staged := make([]stagedFile, 0, len(p.artifacts))
	defer func() {
		for _, s := range staged {
			if removeErr := os.Remove(s.tempPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				p.logger.Warn("[Publisher] Failed to remove temp file %s: %v", s.tempPath, removeErr)
			}
		}
	}()

	for _, artifact := range p.artifacts {
		tempPath, err := stage(artifact, averages, highest)
		if err != nil {
			return err
		}
		staged = append(staged, stagedFile{tempPath: tempPath, artifact: artifact})
		p.logger.Debug("[Publisher] Rendered %s report to %s", artifact.Renderer.Name(), tempPath)
	}

	for i, s := range staged {
		if err := os.Rename(s.tempPath, s.artifact.Path); err != nil {
			staged = staged[i:]
			return core.NewIOError("write", s.artifact.Path, err)
		}
		p.logger.Info("[Publisher] Wrote %s report to %s", s.artifact.Renderer.Name(), s.artifact.Path)
	}
	staged = nil

	return nil
}

// stage renders one artifact into a fresh temp file in the target directory
func stage(artifact Artifact, averages *grades.AverageMap, highest *grades.HighestMap) (string, error) {
	dir := filepath.Dir(artifact.Path)
	pattern := "." + filepath.Base(artifact.Path) + ".*.tmp"

	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", core.NewIOError("create", artifact.Path, unwrapPathError(err))
	}
	tempPath := f.Name()

	fail := func(op string, cause error) (string, error) {
		f.Close()
		os.Remove(tempPath)
		return "", core.NewIOError(op, artifact.Path, unwrapPathError(cause))
	}

	bw := bufio.NewWriter(f)
	if err := artifact.Renderer.Render(bw, averages, highest); err != nil {
		return fail("write", err)
	}
	if err := bw.Flush(); err != nil {
		return fail("write", err)
	}
	if err := f.Chmod(outputFileMode); err != nil {
		return fail("chmod", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return "", core.NewIOError("close", artifact.Path, err)
	}

	return tempPath, nil
}

// unwrapPathError drops the temp file name from *PathError messages so the
// diagnostic names the real target
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// WriteTextReport writes the text report to path, replacing any existing file
func WriteTextReport(averages *grades.AverageMap, highest *grades.HighestMap, path string) error {
	return NewPublisher(nil, Artifact{Path: path, Renderer: TextRenderer{}}).Publish(averages, highest)
}

// WriteCSVSummary writes the CSV summary to path, replacing any existing file
func WriteCSVSummary(averages *grades.AverageMap, highest *grades.HighestMap, path string) error {
	return NewPublisher(nil, Artifact{Path: path, Renderer: CSVRenderer{}}).Publish(averages, highest)
}
