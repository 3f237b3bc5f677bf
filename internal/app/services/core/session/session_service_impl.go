package session

import (
	"context"
	"fmt"
	"medibook-web/internal/app/config"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/models"
	"medibook-web/internal/app/services/shared/locker"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/exceptions"
	"medibook-web/internal/pkg/forms"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	LockerService   contracts.LockerService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewSessionService(
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		LockerService:   lockerService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (svc *sessionService) Open(sessionID string) contracts.SessionContext {
	return &sessionContext{
		id:      sessionID,
		service: svc,
	}
}

type sessionContext struct {
	id      string
	service *sessionService
}

func (s *sessionContext) key(name string) string {
	return fmt.Sprintf("%s:%s:%s", constvars.SessionRedisPrefix, s.id, name)
}

func (s *sessionContext) ID() string {
	return s.id
}

func (s *sessionContext) Read(ctx context.Context) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	data, err := s.service.RedisRepository.Get(ctx, s.key(constvars.SessionKeyUser))
	if err != nil {
		s.service.Log.Error("sessionContext.Read error getting session record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.id),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		s.service.Log.Error("sessionContext.Read error parsing session record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.id),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

// Write overwrites the record. It has no expiry, the record lives until
// Clear or the next login.
func (s *sessionContext) Write(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := s.service.RedisRepository.Set(ctx, s.key(constvars.SessionKeyUser), session, 0)
	if err != nil {
		s.service.Log.Error("sessionContext.Write error storing session record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.id),
			zap.Error(err),
		)
		return err
	}

	s.service.Log.Info("sessionContext.Write succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, s.id),
		zap.String(constvars.LoggingUsernameKey, session.Username),
		zap.String(constvars.LoggingRoleKey, session.Role.String()),
	)
	return nil
}

func (s *sessionContext) Clear(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	for _, name := range []string{constvars.SessionKeyUser, constvars.SessionKeyNavigation} {
		err := s.service.RedisRepository.Delete(ctx, s.key(name))
		if err != nil {
			s.service.Log.Error("sessionContext.Clear error deleting key",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, s.key(name)),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}

func (s *sessionContext) SaveNavigation(ctx context.Context, navigation *forms.Navigation) error {
	if navigation == nil {
		return nil
	}
	return s.service.RedisRepository.Set(ctx, s.key(constvars.SessionKeyNavigation), navigation, constvars.NavigationStateTTL)
}

func (s *sessionContext) TakeNavigation(ctx context.Context) (*forms.Navigation, error) {
	data, err := s.service.RedisRepository.GetDel(ctx, s.key(constvars.SessionKeyNavigation))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	navigation := new(forms.Navigation)
	err = json.Unmarshal([]byte(data), navigation)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return navigation, nil
}

func (s *sessionContext) Guard() forms.Guard {
	return locker.NewSubmissionGuard(s.service.LockerService, s.id, s.service.InternalConfig.Session.SubmissionLockTTL())
}
