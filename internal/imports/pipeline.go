// Package imports implements the batch data-import and validation pipeline
// shared by the certificate, drive and donation-request entry endpoints.
//
// A pipeline run is all-or-nothing at validation time: every record is checked
// before anything is written, and a single invalid record aborts the whole
// request with a per-index error report. Writes happen afterwards in
// fixed-size chunks, one store transaction per chunk, in input order. A chunk
// write fault stops the run and surfaces the count committed so far; chunks
// already committed stay committed (best-effort import, no compensation).
package imports

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"pasaydan.org/backend/internal/constant"
)

// ErrNoRecords is returned when the submitted list is empty or missing. Zero
// records is a rejected request, not a no-op success.
var ErrNoRecords = errors.New("no records provided")

// ValidationError carries the full per-record error report of a failed
// validation pass. Nothing has been written when it is returned.
type ValidationError struct {
	// Details maps a record's positional index to its ordered error list.
	// An index is present only if at least one check failed for that record.
	Details map[int][]string
}

func (e *ValidationError) Error() string {
	return "Validation failed"
}

// Result summarizes a pipeline run. On a mid-batch storage fault it reflects
// what was committed before the failing chunk.
type Result struct {
	Total   int
	Created int
	IDs     []int64
}

// Writer persists one normalized chunk in a single transaction, returning the
// created identifiers. Either every record in the chunk is persisted or none.
type Writer interface {
	InsertChunk(ctx context.Context, records []Record) ([]int64, error)
}

// Descriptor parameterizes the generic pipeline for one entity type.
type Descriptor struct {
	// Name is the entity name used in log fields and response messages,
	// e.g. "drives".
	Name string

	// ListKey is the request body key holding the record list,
	// e.g. "certificates".
	ListKey string

	Rules     []Rule
	Normalize Normalizer

	// Template describes the entity's import fields for caller-side form and
	// spreadsheet generation.
	Template Template
}

type Pipeline struct {
	desc   Descriptor
	writer Writer
}

func NewPipeline(desc Descriptor, writer Writer) *Pipeline {
	return &Pipeline{
		desc:   desc,
		writer: writer,
	}
}

func (p *Pipeline) Descriptor() Descriptor {
	return p.desc
}

// Validate runs the rule table over every record and returns the per-index
// error mapping. An empty mapping means the whole input is valid.
func (p *Pipeline) Validate(records []Record) map[int][]string {
	details := make(map[int][]string)
	for i, r := range records {
		if errs := Violations(r, p.desc.Rules); len(errs) > 0 {
			details[i] = errs
		}
	}
	return details
}

// Run executes the pipeline over the submitted records.
//
// On validation failure it returns a *ValidationError and a nil Result;
// nothing has been written. On a chunk write fault it returns the partial
// Result alongside the fault. Otherwise the Result covers the whole input.
func (p *Pipeline) Run(ctx context.Context, records []Record) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	if details := p.Validate(records); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	result := &Result{Total: len(records)}
	for chunkIdx, chunk := range lo.Chunk(records, constant.ImportChunkSize) {
		normalized := lo.Map(chunk, func(r Record, _ int) Record {
			return p.desc.Normalize(r)
		})

		ids, err := p.writer.InsertChunk(ctx, normalized)
		if err != nil {
			log.Error().
				Err(err).
				Str("entity", p.desc.Name).
				Int("chunk", chunkIdx).
				Int("committed", result.Created).
				Msg("import chunk write failed; stopping")
			return result, errors.Wrapf(err, "import %s: chunk %d write failed", p.desc.Name, chunkIdx)
		}

		result.Created += len(ids)
		result.IDs = append(result.IDs, ids...)
	}

	log.Info().
		Str("entity", p.desc.Name).
		Int("count", result.Created).
		Msg("import completed")

	return result, nil
}
