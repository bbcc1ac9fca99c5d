// Package memory provides in-process repositories for local runs and tests.
// Each repository guards its documents with a mutex and hands out copies.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bookhouse/database/repository"
	"bookhouse/models"
	"bookhouse/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRepo is an in-memory booking store.
type BookingRepo struct {
	mu       sync.Mutex
	bookings map[primitive.ObjectID]models.Booking
	order    []primitive.ObjectID
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{bookings: make(map[primitive.ObjectID]models.Booking)}
}

func (r *BookingRepo) Create(_ context.Context, booking *models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := *booking
	doc.ID = primitive.NewObjectID()
	doc.Extra = models.CopyExtra(booking.Extra)
	doc.Paid = false
	doc.TransactionID = ""
	r.bookings[doc.ID] = doc
	r.order = append(r.order, doc.ID)
	return doc.ID.Hex(), nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[oid]
	if !ok {
		return nil, fmt.Errorf("%w: booking %s", utils.ErrNotFound, id)
	}
	return &b, nil
}

func (r *BookingRepo) GetByEmail(_ context.Context, email string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Booking{}
	for _, oid := range r.order {
		if b := r.bookings[oid]; b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepo) MarkPaid(_ context.Context, id, transactionID string, onlyUnpaid bool) (*models.Booking, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[oid]
	if !ok || (onlyUnpaid && b.Paid) {
		return nil, fmt.Errorf("%w: booking %s", utils.ErrNotFound, id)
	}
	b.Paid = true
	b.TransactionID = transactionID
	r.bookings[oid] = b
	return &b, nil
}

// UserRepo is an in-memory user store keyed by email.
type UserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]models.User)}
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, email)
	}
	u.Profile = copyProfile(u.Profile)
	return &u, nil
}

func (r *UserRepo) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		u.Profile = copyProfile(u.Profile)
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *UserRepo) UpsertProfile(_ context.Context, email string, fields map[string]interface{}) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.users[email]
	res := &models.UpdateResult{Acknowledged: true}
	if !exists {
		u = models.User{ID: primitive.NewObjectID(), Email: email}
		res.UpsertedCount = 1
		res.UpsertedID = u.ID.Hex()
	} else {
		res.MatchedCount = 1
	}

	profile := copyProfile(u.Profile)
	changed := false
	for k, v := range fields {
		if k == "email" || k == "_id" {
			continue
		}
		if k == "role" {
			if s, ok := v.(string); ok && s != u.Role {
				u.Role = s
				changed = true
			}
			continue
		}
		if old, ok := profile[k]; !ok || fmt.Sprint(old) != fmt.Sprint(v) {
			changed = true
		}
		profile[k] = v
	}
	u.Profile = profile
	if exists && changed {
		res.ModifiedCount = 1
	}
	r.users[email] = u
	return res, nil
}

func (r *UserRepo) SetRole(_ context.Context, email, role string) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := &models.UpdateResult{Acknowledged: true}
	u, ok := r.users[email]
	if !ok {
		return res, nil
	}
	res.MatchedCount = 1
	if u.Role != role {
		u.Role = role
		res.ModifiedCount = 1
		r.users[email] = u
	}
	return res, nil
}

func copyProfile(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// PaymentRepo is an append-only in-memory payment log.
type PaymentRepo struct {
	mu       sync.Mutex
	payments []models.Payment
}

func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{}
}

func (r *PaymentRepo) Create(_ context.Context, payment *models.Payment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := *payment
	doc.ID = primitive.NewObjectID()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	r.payments = append(r.payments, doc)
	return doc.ID.Hex(), nil
}

func (r *PaymentRepo) GetByBookingID(_ context.Context, bookingID string) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Payment{}
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

// DemoServices is the catalog the memory store starts with, since services
// cannot be created through the API.
func DemoServices() []models.Service {
	return []models.Service{
		{Name: "Book Binding", Description: "Hardcover rebinding of a worn book", Price: 20, Slots: []string{"09:00", "11:00", "14:00"}},
		{Name: "Book Restoration", Description: "Page repair and spine restoration", Price: 45, Slots: []string{"10:00", "15:00"}},
		{Name: "Home Delivery", Description: "Delivery of ordered books", Price: 5, Slots: []string{"08:00", "12:00", "16:00"}},
	}
}

// ServiceRepo is a read-only in-memory service catalog.
type ServiceRepo struct {
	services []models.Service
}

// NewServiceRepo seeds the catalog, assigning ids to entries without one.
func NewServiceRepo(seed ...models.Service) *ServiceRepo {
	services := make([]models.Service, len(seed))
	copy(services, seed)
	for i := range services {
		if services[i].ID.IsZero() {
			services[i].ID = primitive.NewObjectID()
		}
	}
	return &ServiceRepo{services: services}
}

func (r *ServiceRepo) GetAll(_ context.Context) ([]models.Service, error) {
	out := make([]models.Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *ServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	for _, s := range r.services {
		if s.ID == oid {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: service %s", utils.ErrNotFound, id)
}

// BookRepo is an in-memory book catalog.
type BookRepo struct {
	mu    sync.Mutex
	books []models.Book
}

func NewBookRepo() *BookRepo {
	return &BookRepo{}
}

func (r *BookRepo) GetAll(_ context.Context) ([]models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *BookRepo) Create(_ context.Context, book *models.Book) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := *book
	doc.ID = primitive.NewObjectID()
	doc.Extra = models.CopyExtra(book.Extra)
	r.books = append(r.books, doc)
	return doc.ID.Hex(), nil
}

func (r *BookRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.books {
		if b.Email == email {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
