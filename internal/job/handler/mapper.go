package handler

import (
	"encoding/json"
	"time"

	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func jobToProto(j *model.Job) *pb.Job {
	if j == nil {
		return nil
	}
	return &pb.Job{
		JobId:          j.ID,
		Type:           j.Type,
		UserId:         j.UserID,
		Data:           string(j.Data),
		IdempotencyKey: j.IdempotencyKey,
		State:          string(j.State),
		Progress:       int32(j.Progress),
		Result:         string(j.Result),
		FailedReason:   j.FailedReason,
		Attempts:       int32(j.Attempts),
		CreatedAt:      timestamppb.New(j.CreatedAt),
		UpdatedAt:      timestamppb.New(j.UpdatedAt),
		StartedAt:      optionalTime(j.StartedAt),
		FinishedAt:     optionalTime(j.FinishedAt),
	}
}

func eventToProto(e *model.JobEvent) *pb.JobEvent {
	out := &pb.JobEvent{
		Id:        e.ID,
		JobId:     e.JobID,
		ToState:   string(e.ToState),
		Note:      e.Note,
		CreatedAt: timestamppb.New(e.CreatedAt),
	}
	if e.FromState != nil {
		from := string(*e.FromState)
		out.FromState = &from
	}
	return out
}

func optionalTime(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// jsonFromProto reads a JSON document carried as a string field. An empty
// string means no document.
func jsonFromProto(field, s string) (model.JSONB, error) {
	if s == "" {
		return nil, nil
	}
	if !json.Valid([]byte(s)) {
		return nil, apperr.Validation(field + " is not valid JSON")
	}
	return model.JSONB(s), nil
}
