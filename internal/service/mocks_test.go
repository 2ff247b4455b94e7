package service

import (
	"context"
	"time"

	"siwatours/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Activate(ctx context.Context, userID uuid.UUID, passwordHash *string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

// MockVerificationTokenRepository is a mock implementation of
// repository.VerificationTokenRepository.
type MockVerificationTokenRepository struct {
	mock.Mock
}

func (m *MockVerificationTokenRepository) Create(ctx context.Context, token *entity.VerificationToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockVerificationTokenRepository) FindValid(ctx context.Context, tokenHash string, tokenType entity.VerificationType) (*entity.VerificationToken, error) {
	args := m.Called(ctx, tokenHash, tokenType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationToken), args.Error(1)
}

func (m *MockVerificationTokenRepository) Consume(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVerificationTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSessionRepository is a mock implementation of repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) RotateToken(ctx context.Context, sessionID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, sessionID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionRepository) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTripRepository is a mock implementation of repository.TripRepository.
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Trip), args.Error(1)
}

func (m *MockTripRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]entity.Trip, error) {
	args := m.Called(ctx, publishedOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Trip), args.Error(1)
}

func (m *MockTripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTripRepository) ReserveSpots(ctx context.Context, tripID uuid.UUID, count int) (bool, error) {
	args := m.Called(ctx, tripID, count)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripRepository) ReleaseSpots(ctx context.Context, tripID uuid.UUID, count int) error {
	args := m.Called(ctx, tripID, count)
	return args.Error(0)
}

// MockBookingRepository is a mock implementation of repository.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, limit, offset int) ([]entity.Booking, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockGalleryRepository is a mock implementation of repository.GalleryRepository.
type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, image *entity.GalleryImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockGalleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) List(ctx context.Context, category *entity.GalleryCategory, limit, offset int) ([]entity.GalleryImage, error) {
	args := m.Called(ctx, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) Update(ctx context.Context, image *entity.GalleryImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSecurityLogRepository is a mock implementation of
// repository.SecurityLogRepository.
type MockSecurityLogRepository struct {
	mock.Mock
}

func (m *MockSecurityLogRepository) Log(ctx context.Context, log *entity.SecurityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(hash string, password string) bool {
	return hash == "hashed:"+password
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
