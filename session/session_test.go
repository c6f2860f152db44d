package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinein/models"
)

var (
	appetizers = models.Category{ID: 1, Name: "Appetizers", ImageURL: "a.png"}
	mains      = models.Category{ID: 2, Name: "Main Course", ImageURL: "m.png"}
	desserts   = models.Category{ID: 3, Name: "Desserts", ImageURL: "d.png"}

	springRolls = models.Dish{ID: 10, Name: "Spring Rolls", Price: 120, CategoryID: 1}
	paneer      = models.Dish{ID: 11, Name: "Paneer Tikka", Price: 180, CategoryID: 1}
	soup        = models.Dish{ID: 12, Name: "Hot and Sour Soup", Price: 90, CategoryID: 1}
)

// fakeGateway serves canned data and records customer submissions.
type fakeGateway struct {
	categories []models.Category
	dishes     map[int64][]models.Dish

	fetchErr  error
	createErr error

	createdNames   []string
	createdMobiles []string
}

func (f *fakeGateway) Categories(ctx context.Context) ([]models.Category, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.categories, nil
}

func (f *fakeGateway) Category(ctx context.Context, id int64) (*models.Category, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	for _, c := range f.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errors.New("category not found")
}

func (f *fakeGateway) CategoryDishes(ctx context.Context, categoryID int64) ([]models.Dish, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.dishes[categoryID], nil
}

func (f *fakeGateway) CreateCustomer(ctx context.Context, name, mobileNumber string) (*models.Customer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdNames = append(f.createdNames, name)
	f.createdMobiles = append(f.createdMobiles, mobileNumber)
	return &models.Customer{ID: int64(len(f.createdNames)), Name: name, MobileNumber: mobileNumber}, nil
}

func newTestSession(t *testing.T, gw *fakeGateway) (*Session, *[]string) {
	t.Helper()
	s := New(gw, "T7")
	alerts := &[]string{}
	s.Alert = func(msg string) { *alerts = append(*alerts, msg) }
	return s, alerts
}

func TestNewDefaults(t *testing.T) {
	s := New(&fakeGateway{}, "")
	assert.Equal(t, "Y?", s.Table)
	assert.Equal(t, Browsing, s.Overlay())
	assert.True(t, s.Cart().Empty())

	s2 := New(&fakeGateway{}, "")
	assert.NotEqual(t, s.ID, s2.ID, "each session gets its own id")
}

func TestOverlayTransitions(t *testing.T) {
	s, _ := newTestSession(t, &fakeGateway{})

	s.ViewOrder()
	assert.Equal(t, OrderSummaryOpen, s.Overlay())

	s.PlaceOrder()
	assert.Equal(t, CustomerInfoOpen, s.Overlay())

	s.Close()
	assert.Equal(t, Browsing, s.Overlay())
}

func TestPlaceOrderOnlyFromSummary(t *testing.T) {
	s, _ := newTestSession(t, &fakeGateway{})

	s.PlaceOrder()
	assert.Equal(t, Browsing, s.Overlay(), "placeOrder from browsing must not open the form")

	s.ViewOrder()
	s.PlaceOrder()
	s.ViewOrder()
	assert.Equal(t, CustomerInfoOpen, s.Overlay(), "viewOrder has no effect once the form is open")
}

func TestCloseFromEitherOverlay(t *testing.T) {
	s, _ := newTestSession(t, &fakeGateway{})

	s.ViewOrder()
	s.Close()
	assert.Equal(t, Browsing, s.Overlay())

	s.ViewOrder()
	s.PlaceOrder()
	s.Close()
	assert.Equal(t, Browsing, s.Overlay())
}

func TestSubmitSuccessClosesOverlayAndKeepsCart(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newTestSession(t, gw)

	s.Cart().Add(springRolls)
	s.Cart().Add(paneer)
	s.Note = "less spicy please"
	s.ViewOrder()
	s.PlaceOrder()
	s.CustomerName = "Asha"
	s.MobileNumber = "9876543210"

	err := s.SubmitCustomerInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Browsing, s.Overlay())
	assert.Equal(t, []string{"Asha"}, gw.createdNames)
	assert.Equal(t, []string{"9876543210"}, gw.createdMobiles)
	assert.Empty(t, s.CustomerName, "form is cleared after success")
	assert.Empty(t, s.MobileNumber)

	// the cart survives a successful submit, and the note stays local
	assert.Equal(t, 2, s.Cart().TotalItems())
	assert.Equal(t, "less spicy please", s.Note)
}

func TestSubmitWithoutContactAlertsOnce(t *testing.T) {
	gw := &fakeGateway{}
	s, alerts := newTestSession(t, gw)
	s.ViewOrder()
	s.PlaceOrder()

	err := s.SubmitCustomerInfo(context.Background())
	require.ErrorIs(t, err, ErrMissingContact)

	assert.Equal(t, CustomerInfoOpen, s.Overlay())
	assert.Empty(t, gw.createdNames, "gateway must not be called")
	assert.Len(t, *alerts, 1)
}

func TestSubmitFailureKeepsFormAndOverlay(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("boom")}
	s, alerts := newTestSession(t, gw)
	s.ViewOrder()
	s.PlaceOrder()
	s.CustomerName = "Asha"
	s.MobileNumber = "9876543210"

	err := s.SubmitCustomerInfo(context.Background())
	require.Error(t, err)

	assert.Equal(t, CustomerInfoOpen, s.Overlay(), "overlay stays open for retry")
	assert.Equal(t, "Asha", s.CustomerName, "fields stay populated")
	assert.Equal(t, "9876543210", s.MobileNumber)
	assert.Len(t, *alerts, 1)
}

func TestSearchFiltersCaseInsensitive(t *testing.T) {
	gw := &fakeGateway{
		categories: []models.Category{appetizers, mains, desserts},
		dishes:     map[int64][]models.Dish{1: {springRolls, paneer, soup}},
	}
	s, _ := newTestSession(t, gw)
	require.NoError(t, s.LoadCategories(context.Background()))
	require.NoError(t, s.OpenCategory(context.Background(), 1))

	s.SetSearch("")
	assert.Len(t, s.FilteredCategories(), 3, "empty query returns everything")
	assert.Len(t, s.FilteredDishes(), 3)

	s.SetSearch("SerT")
	got := s.FilteredCategories()
	require.Len(t, got, 1)
	assert.Equal(t, desserts.ID, got[0].ID)

	s.SetSearch("paNEer")
	dishes := s.FilteredDishes()
	require.Len(t, dishes, 1)
	assert.Equal(t, paneer.ID, dishes[0].ID)

	s.SetSearch("pizza")
	assert.Empty(t, s.FilteredDishes())
	assert.Empty(t, s.FilteredCategories())
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	gw := &fakeGateway{categories: []models.Category{appetizers, mains}}
	s, alerts := newTestSession(t, gw)
	require.NoError(t, s.LoadCategories(context.Background()))

	gw.fetchErr = errors.New("store unreachable")
	err := s.LoadCategories(context.Background())
	require.Error(t, err)

	assert.Len(t, s.FilteredCategories(), 2, "previous list stays rendered")
	assert.Len(t, *alerts, 1)
}

func TestOpenCategoryFailureKeepsPriorCategory(t *testing.T) {
	gw := &fakeGateway{
		categories: []models.Category{appetizers, mains},
		dishes:     map[int64][]models.Dish{1: {springRolls}},
	}
	s, _ := newTestSession(t, gw)
	require.NoError(t, s.OpenCategory(context.Background(), 1))

	gw.fetchErr = errors.New("store unreachable")
	require.Error(t, s.OpenCategory(context.Background(), 2))

	require.NotNil(t, s.Category())
	assert.Equal(t, appetizers.ID, s.Category().ID)
	assert.Len(t, s.FilteredDishes(), 1)
}

func TestChangeQuantity(t *testing.T) {
	s, _ := newTestSession(t, &fakeGateway{})
	s.Cart().Add(springRolls)
	s.Cart().Add(springRolls)

	s.ChangeQuantity(springRolls.ID, -1)
	l, ok := s.Cart().Line(springRolls.ID)
	require.True(t, ok)
	assert.Equal(t, 1, l.Qty)

	s.ChangeQuantity(springRolls.ID, -1)
	assert.True(t, s.Cart().Empty(), "row disappears at zero")

	s.ChangeQuantity(999, 1)
	assert.True(t, s.Cart().Empty(), "unknown dish id is ignored")
}
