package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable catalog entry. Stored fields beyond the modeled ones
// are kept in Extra.
type Service struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Name        string                 `bson:"name" json:"name"`
	Description string                 `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64                `bson:"price" json:"price"`
	Slots       []string               `bson:"slots,omitempty" json:"slots,omitempty"`
	Img         string                 `bson:"img,omitempty" json:"img,omitempty"`
	Extra       map[string]interface{} `bson:",inline" json:"-"`
}

type serviceFields Service

var serviceKeys = fieldNames(serviceFields{})

func (s Service) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(serviceFields(s), s.Extra)
}

func (s *Service) UnmarshalJSON(data []byte) error {
	var known serviceFields
	extra, err := decodeWithExtra(data, &known, serviceKeys)
	if err != nil {
		return err
	}
	*s = Service(known)
	s.Extra = extra
	return nil
}

// Book is an admin-managed catalog book, keyed by its owner email for deletion.
type Book struct {
	ID       primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Email    string                 `bson:"email" json:"email" binding:"required"`
	Name     string                 `bson:"name" json:"name"`
	Author   string                 `bson:"author,omitempty" json:"author,omitempty"`
	Price    float64                `bson:"price" json:"price"`
	Quantity int                    `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Img      string                 `bson:"img,omitempty" json:"img,omitempty"`
	Extra    map[string]interface{} `bson:",inline" json:"-"`
}

type bookFields Book

var bookKeys = fieldNames(bookFields{})

func (b Book) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(bookFields(b), b.Extra)
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var known bookFields
	extra, err := decodeWithExtra(data, &known, bookKeys)
	if err != nil {
		return err
	}
	*b = Book(known)
	b.Extra = extra
	return nil
}

// DeleteResult mirrors the store acknowledgement of a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
