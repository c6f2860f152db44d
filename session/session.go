// Package session models one customer's browsing session: the fetched menu,
// the cart it owns, the search filter and the two ordering overlays. A
// session has exactly one writer (the local user), so there is no locking
// here, and none of its state survives the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"dinein/cart"
	"dinein/models"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Gateway is the slice of the HTTP API the view layer needs.
type Gateway interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Category(ctx context.Context, id int64) (*models.Category, error)
	CategoryDishes(ctx context.Context, categoryID int64) ([]models.Dish, error)
	CreateCustomer(ctx context.Context, name, mobileNumber string) (*models.Customer, error)
}

// Overlay is the ordering-overlay state. Exactly one of the three holds at
// any time.
type Overlay int

const (
	Browsing Overlay = iota
	OrderSummaryOpen
	CustomerInfoOpen
)

// defaultTable is the placeholder shown when no ?table= parameter arrived.
const defaultTable = "Y?"

// ErrMissingContact is returned when the customer form is submitted without
// both a name and a mobile number.
var ErrMissingContact = errors.New("name and mobile number are required")

type Session struct {
	ID    string
	Table string // display only, never validated or persisted

	gw      Gateway
	cart    *cart.Cart
	overlay Overlay

	categories []models.Category
	category   *models.Category
	dishes     []models.Dish
	query      string
	matcher    *search.Matcher

	CustomerName string
	MobileNumber string
	Note         string // free-text order note, kept local and never transmitted

	// Alert reports a user-facing failure once per event. The default just
	// logs; tests swap it out.
	Alert func(msg string)
}

// New builds a session for the given table label, taken from the ?table=
// query parameter. An empty label falls back to the placeholder the UI shows.
func New(gw Gateway, table string) *Session {
	if table == "" {
		table = defaultTable
	}
	return &Session{
		ID:      uuid.NewString(),
		Table:   table,
		gw:      gw,
		cart:    cart.New(),
		matcher: search.New(language.Und, search.IgnoreCase),
		Alert:   func(msg string) { log.Println("alert:", msg) },
	}
}

// Cart exposes the session's cart. The session is its sole owner; nothing
// else reads or writes cart lines.
func (s *Session) Cart() *cart.Cart { return s.cart }

func (s *Session) Overlay() Overlay { return s.overlay }

// Category returns the currently opened category, nil while on the landing
// page.
func (s *Session) Category() *models.Category { return s.category }

// LoadCategories fetches the category grid. On failure the previous list is
// kept and the failure is reported once.
func (s *Session) LoadCategories(ctx context.Context) error {
	categories, err := s.gw.Categories(ctx)
	if err != nil {
		s.Alert("Error fetching categories: " + err.Error())
		return err
	}
	s.categories = categories
	return nil
}

// OpenCategory fetches one category and its dishes. Partial failure leaves
// the previously shown category in place.
func (s *Session) OpenCategory(ctx context.Context, id int64) error {
	c, err := s.gw.Category(ctx, id)
	if err != nil {
		s.Alert("Error fetching category: " + err.Error())
		return err
	}
	dishes, err := s.gw.CategoryDishes(ctx, id)
	if err != nil {
		s.Alert("Error fetching dishes: " + err.Error())
		return err
	}
	s.category = c
	s.dishes = dishes
	return nil
}

// SetSearch updates the filter; the Filtered accessors recompute from it on
// every call, one keystroke at a time.
func (s *Session) SetSearch(query string) { s.query = query }

func (s *Session) matches(name string) bool {
	if s.query == "" {
		return true
	}
	start, _ := s.matcher.IndexString(name, s.query)
	return start >= 0
}

func (s *Session) FilteredCategories() []models.Category {
	if s.query == "" {
		return s.categories
	}
	out := []models.Category{}
	for _, c := range s.categories {
		if s.matches(c.Name) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Session) FilteredDishes() []models.Dish {
	if s.query == "" {
		return s.dishes
	}
	out := []models.Dish{}
	for _, d := range s.dishes {
		if s.matches(d.Name) {
			out = append(out, d)
		}
	}
	return out
}

// ChangeQuantity adjusts a summary row by delta, dropping the row when the
// quantity reaches zero. Unknown dish ids are ignored.
func (s *Session) ChangeQuantity(dishID int64, delta int) {
	if l, ok := s.cart.Line(dishID); ok {
		s.cart.ApplyDelta(l.Dish, delta)
	}
}

// ViewOrder opens the order summary overlay. Only reachable while browsing.
func (s *Session) ViewOrder() {
	if s.overlay == Browsing {
		s.overlay = OrderSummaryOpen
	}
}

// PlaceOrder moves from the summary to the customer-info form. Cart contents
// stay local; nothing is transmitted by this step.
func (s *Session) PlaceOrder() {
	if s.overlay == OrderSummaryOpen {
		s.overlay = CustomerInfoOpen
	}
}

// Close dismisses whichever overlay is open and returns to browsing.
func (s *Session) Close() { s.overlay = Browsing }

// SubmitCustomerInfo persists the contact details through the gateway. On
// success the form is cleared and the overlay closes; the cart is not
// cleared. A failed submit leaves the overlay open and the fields populated
// so the user can retry.
func (s *Session) SubmitCustomerInfo(ctx context.Context) error {
	if s.CustomerName == "" || s.MobileNumber == "" {
		s.Alert("Please enter your name and mobile number.")
		return ErrMissingContact
	}
	if _, err := s.gw.CreateCustomer(ctx, s.CustomerName, s.MobileNumber); err != nil {
		s.Alert("Failed to save customer info.")
		return err
	}
	s.CustomerName = ""
	s.MobileNumber = ""
	s.overlay = Browsing
	return nil
}

// Summary renders the order-summary overlay text: one row per cart line plus
// the grand total, priced from each line's captured dish price.
func (s *Session) Summary() string {
	var b strings.Builder
	b.WriteString("Your Order Summary\n")
	for _, l := range s.cart.Lines() {
		fmt.Fprintf(&b, "• %s × %d — %d\n", l.Dish.Name, l.Qty, l.Dish.Price*int64(l.Qty))
	}
	fmt.Fprintf(&b, "Total: %d\n", s.cart.TotalAmount())
	return b.String()
}
