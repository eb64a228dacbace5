package accommodation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/geocode"
	"staybook/internal/repository"
)

type MockAccommodationRepository struct {
	mock.Mock
}

func (m *MockAccommodationRepository) Create(ctx context.Context, a *domain.Accommodation, images [][]byte) error {
	args := m.Called(ctx, a, images)
	if a != nil {
		a.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAccommodationRepository) Update(ctx context.Context, a *domain.Accommodation, images [][]byte) error {
	args := m.Called(ctx, a, images)
	return args.Error(0)
}

func (m *MockAccommodationRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Accommodation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepository) Random(ctx context.Context, userID int64, limit int) ([]repository.MainScreenRow, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MainScreenRow), args.Error(1)
}

func (m *MockAccommodationRepository) CountImages(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccommodationRepository) GetImage(ctx context.Context, id int64, index int) ([]byte, error) {
	args := m.Called(ctx, id, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) PromoteToOwner(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, accommodationID int64) (bool, error) {
	args := m.Called(ctx, userID, accommodationID)
	return args.Bool(0), args.Error(1)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Forward(ctx context.Context, address string) (*geocode.Location, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geocode.Location), args.Error(1)
}

func (m *MockGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	args := m.Called(ctx, lat, lon)
	return args.String(0), args.Error(1)
}

func validInput() ListingInput {
	return ListingInput{
		Name:          "Cozy Apartment",
		Address:       "Hlavna 1, Bratislava",
		MaxGuests:     4,
		PricePerNight: 80,
		Description:   "Near the old town",
		IBAN:          "SK3112000000198742637541",
		Images:        [][]byte{[]byte("a"), []byte("b"), []byte("c")},
	}
}

func newTestService() (*Service, *MockAccommodationRepository, *MockUserRepository, *MockLikeRepository, *MockGeocoder) {
	accs := new(MockAccommodationRepository)
	users := new(MockUserRepository)
	likes := new(MockLikeRepository)
	geocoder := new(MockGeocoder)
	return NewService(accs, users, likes, geocoder), accs, users, likes, geocoder
}

func TestCreateListing_Success(t *testing.T) {
	service, accs, users, _, geocoder := newTestService()
	geocoder.On("Forward", mock.Anything, "Hlavna 1, Bratislava").Return(&geocode.Location{
		Lat: 48.1486, Lon: 17.1077, City: "Bratislava", Country: "Slovakia",
	}, nil)
	accs.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	users.On("PromoteToOwner", mock.Anything, int64(3)).Return(nil)

	a, err := service.Create(context.Background(), 3, validInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(11), a.ID)
	assert.Equal(t, "Bratislava", a.City)
	assert.Equal(t, "Slovakia", a.Country)
	assert.InDelta(t, 48.1486, a.Latitude, 1e-9)
	users.AssertExpectations(t)
}

func TestCreateListing_TooFewImages(t *testing.T) {
	service, accs, _, _, geocoder := newTestService()

	in := validInput()
	in.Images = in.Images[:2]
	_, err := service.Create(context.Background(), 3, in)

	assert.ErrorIs(t, err, ErrValidation)
	geocoder.AssertNotCalled(t, "Forward")
	accs.AssertNotCalled(t, "Create")
}

func TestCreateListing_UnresolvableAddress(t *testing.T) {
	service, accs, _, _, geocoder := newTestService()
	geocoder.On("Forward", mock.Anything, mock.Anything).Return(nil, geocode.ErrNoResult)

	_, err := service.Create(context.Background(), 3, validInput())

	assert.ErrorIs(t, err, ErrInvalidAddress)
	accs.AssertNotCalled(t, "Create")
}

func TestCreateListing_GeocoderDown(t *testing.T) {
	service, accs, _, _, geocoder := newTestService()
	geocoder.On("Forward", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := service.Create(context.Background(), 3, validInput())

	assert.ErrorIs(t, err, ErrGeocodeUnavailable)
	accs.AssertNotCalled(t, "Create")
}

func TestUpdateListing_NotOwner(t *testing.T) {
	service, accs, _, _, _ := newTestService()
	accs.On("GetByID", mock.Anything, int64(11)).Return(&domain.Accommodation{
		ID: 11, OwnerID: 99,
	}, nil)

	_, err := service.Update(context.Background(), 11, 3, validInput())

	assert.ErrorIs(t, err, ErrNotFound)
	accs.AssertNotCalled(t, "Update")
}

func TestUpdateListing_ReGeocodesAddress(t *testing.T) {
	service, accs, _, _, geocoder := newTestService()
	accs.On("GetByID", mock.Anything, int64(11)).Return(&domain.Accommodation{
		ID: 11, OwnerID: 3, City: "Bratislava", Country: "Slovakia",
	}, nil)
	geocoder.On("Forward", mock.Anything, "Stephansplatz 1, Vienna").Return(&geocode.Location{
		Lat: 48.2082, Lon: 16.3738, City: "Vienna", Country: "Austria",
	}, nil)
	accs.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Accommodation) bool {
		return a.City == "Vienna" && a.Country == "Austria"
	}), mock.Anything).Return(nil)

	in := validInput()
	in.Address = "Stephansplatz 1, Vienna"
	a, err := service.Update(context.Background(), 11, 3, in)

	assert.NoError(t, err)
	assert.Equal(t, "Vienna", a.City)
	accs.AssertExpectations(t)
}

func TestDeleteListing(t *testing.T) {
	service, accs, _, _, _ := newTestService()
	accs.On("DeleteOwned", mock.Anything, int64(11), int64(3)).Return(true, nil)
	accs.On("DeleteOwned", mock.Anything, int64(11), int64(4)).Return(false, nil)

	assert.NoError(t, service.Delete(context.Background(), 11, 3))
	assert.ErrorIs(t, service.Delete(context.Background(), 11, 4), ErrNotFound)
}

func TestDetails_Flags(t *testing.T) {
	service, accs, _, likes, _ := newTestService()
	accs.On("GetByID", mock.Anything, int64(11)).Return(&domain.Accommodation{
		ID: 11, OwnerID: 3, Name: "Cozy Apartment",
	}, nil)
	accs.On("CountImages", mock.Anything, int64(11)).Return(int64(4), nil)
	likes.On("Exists", mock.Anything, int64(3), int64(11)).Return(true, nil)

	d, err := service.Details(context.Background(), 11, 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), d.ImageCount)
	assert.True(t, d.IsLiked)
	assert.True(t, d.IsOwner)
}

func TestConfirmation(t *testing.T) {
	service, accs, _, _, _ := newTestService()
	accs.On("GetByID", mock.Anything, int64(11)).Return(&domain.Accommodation{
		ID: 11, PricePerNight: 80, IBAN: "SK3112000000198742637541",
	}, nil)

	price, iban, err := service.Confirmation(context.Background(), 11)

	assert.NoError(t, err)
	assert.Equal(t, 80.0, price)
	assert.Equal(t, "SK3112000000198742637541", iban)
}

func TestConfirmation_NotFound(t *testing.T) {
	service, accs, _, _, _ := newTestService()
	accs.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := service.Confirmation(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImage_IndexValidation(t *testing.T) {
	service, accs, _, _, _ := newTestService()

	_, err := service.Image(context.Background(), 11, 0)
	assert.ErrorIs(t, err, ErrValidation)

	accs.On("GetImage", mock.Anything, int64(11), 5).Return(nil, gorm.ErrRecordNotFound)
	_, err = service.Image(context.Background(), 11, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReverseAddress(t *testing.T) {
	service, _, _, _, geocoder := newTestService()
	geocoder.On("Reverse", mock.Anything, 48.1486, 17.1077).Return("Hlavna 1, Bratislava, Slovakia", nil)

	addr, err := service.ReverseAddress(context.Background(), 48.1486, 17.1077)

	assert.NoError(t, err)
	assert.Equal(t, "Hlavna 1, Bratislava, Slovakia", addr)
}
