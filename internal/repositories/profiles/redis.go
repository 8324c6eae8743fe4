package profiles

import (
	"context"
	"log/slog"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	redisclient "github.com/tinkertools/tinker-api/internal/redis"
)

const (
	profileKeyPrefix = "profile:"
	indexKey         = "profile:index"

	errProfileNil     = "profile cannot be nil"
	errProfileIDEmpty = "profile ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis profile repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Key returns the Redis key of a profile
func Key(id string) string {
	return profileKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	data, err := encode(input.Profile)
	if err != nil {
		return nil, err
	}

	// SETNX claims the ID atomically; re-adding an existing ID to the index
	// is a no-op.
	pipe := r.client.TxPipeline()
	created := pipe.SetNX(ctx, Key(input.Profile.ID), data, 0)
	pipe.SAdd(ctx, indexKey, input.Profile.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create profile")
	}
	if !created.Val() {
		return nil, errors.AlreadyExistsf("profile with ID %s already exists", input.Profile.ID)
	}

	return &CreateOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	result, err := r.client.Get(ctx, Key(input.ID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("profile with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	var profile ao.Profile
	if err := json.Unmarshal(result, &profile); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile data")
	}
	if err := profile.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored profile is invalid").
			WithMeta("profile_id", input.ID)
	}

	return &GetOutput{Profile: &profile}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	data, err := encode(input.Profile)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.SetXX(ctx, Key(input.Profile.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update profile")
	}
	if !updated {
		return nil, errors.NotFoundf("profile with ID %s not found", input.Profile.ID)
	}

	return &UpdateOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, Key(input.ID))
	pipe.SRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("profile with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read profile index")
	}

	profiles := make([]*ao.Profile, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "profile not found, cleaning up index",
					"profile_id", id)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get profile %s", id)
		}
		profiles = append(profiles, out.Profile)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Name != profiles[j].Name {
			return profiles[i].Name < profiles[j].Name
		}
		return profiles[i].ID < profiles[j].ID
	})

	return &ListOutput{Profiles: profiles}, nil
}

func encode(profile *ao.Profile) ([]byte, error) {
	if profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile data")
	}
	return data, nil
}
