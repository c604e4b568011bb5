package cacherepositories

import (
	"context"
	"time"
)

// Strategy names the execution path that produced a cached artifact.
const (
	StrategyLocal  = "local"
	StrategyRemote = "remote"
)

type CachedArtifactModel struct {
	Signature string `json:"signature" bson:"signature"`
	Module    string `json:"module" bson:"module"`
	Strategy  string `json:"strategy" bson:"strategy"`

	MimeType  string    `json:"mimeType" bson:"mimeType"`
	Size      int64     `json:"size" bson:"size"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type CachedArtifactsRepository interface {
	CreateCachedArtifactInfo(ctx context.Context, info CachedArtifactModel) error
	DeleteCachedArtifactInfo(ctx context.Context, signature, module string) error
	GetCachedArtifactInfo(ctx context.Context, signature, module string) (CachedArtifactModel, error)
	GetCachedArtifactInfosOfModule(ctx context.Context, module string) ([]CachedArtifactModel, error)
}

type CachedArtifactsStorage interface {
	Save(ctx context.Context, signature, module, mimeType string, data []byte) error
	Get(ctx context.Context, signature, module string) ([]byte, error)
	Delete(ctx context.Context, signature, module string) error
}

type InvalidationModel struct {
	InvalidationDate time.Time `json:"invalidationDate" bson:"invalidationDate"`

	RequestedInvalidations []string              `json:"requestedInvalidations" bson:"requestedInvalidations"`
	DoneInvalidations      []string              `json:"doneInvalidations" bson:"doneInvalidations"`
	InvalidatedArtifacts   []CachedArtifactModel `json:"invalidatedArtifacts" bson:"invalidatedArtifacts"`
	InvalidationError      *string               `json:"invalidationError" bson:"invalidationError"`
}

type InvalidationsRepository interface {
	CreateInvalidation(ctx context.Context, invalidation InvalidationModel) error
	GetLatestInvalidation(ctx context.Context, module string) (InvalidationModel, error)
}
