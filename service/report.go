package service

import (
	"tipovacka/app_error"
)

type RowFailure struct {
	Target string         `json:"target"`
	Kind   app_error.Kind `json:"kind"`
	Error  string         `json:"error"`
}

// BatchReport collects per-row outcomes of a batch write. Rows failing with a
// non-aborting error are recorded and the batch moves on.
type BatchReport struct {
	Processed int          `json:"processed"`
	Failed    []RowFailure `json:"failed"`
}

func NewBatchReport() *BatchReport {
	return &BatchReport{Failed: make([]RowFailure, 0)}
}

func (r *BatchReport) Ok() bool {
	return len(r.Failed) == 0
}

func (r *BatchReport) succeed() {
	r.Processed++
}

// record adds err for target and returns err when the batch has to stop.
func (r *BatchReport) record(target string, err error) error {
	if err == nil {
		r.succeed()
		return nil
	}
	r.Failed = append(r.Failed, RowFailure{
		Target: target,
		Kind:   app_error.KindOf(err),
		Error:  err.Error(),
	})
	if app_error.Aborts(err) {
		return err
	}
	return nil
}
