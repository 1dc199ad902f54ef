// Package viewstate holds the interactive state of a product page and its transitions.
//
// State is a plain value: every transition returns a new Product and never touches
// the receiver, so a page can rebuild its state from request parameters, apply one
// user action, and render the result without sharing anything between requests.
package viewstate

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MinQuantity is the smallest quantity the stepper will hold
const MinQuantity = 1

var (
	// ErrNoImages is returned when a gallery is created for a product without images
	ErrNoImages = errors.New("product has no images")
	// ErrImageOutOfRange is returned when selecting a thumbnail index that does not exist
	ErrImageOutOfRange = errors.New("image index out of range")
)

// Stepper operations accepted by Apply
const (
	OpIncrement = "inc"
	OpDecrement = "dec"
	OpSet       = "set"
)

// Product is the gallery selection and quantity for one product view.
// Invariants: 0 <= SelectedImage < ImageCount() and Quantity >= MinQuantity.
type Product struct {
	imageCount    int
	SelectedImage int
	Quantity      int
}

// New returns the initial state: first image selected, quantity 1
func New(imageCount int) (Product, error) {
	if imageCount < 1 {
		return Product{}, ErrNoImages
	}
	return Product{imageCount: imageCount, Quantity: MinQuantity}, nil
}

// Restore rebuilds state from the raw image and quantity values a client sent back.
// Both are coerced rather than rejected: a bad image index selects the first image,
// a bad quantity becomes MinQuantity.
func Restore(imageCount int, image, quantity string) (Product, error) {
	s, err := New(imageCount)
	if err != nil {
		return s, err
	}

	if idx, err := strconv.Atoi(strings.TrimSpace(image)); err == nil {
		if selected, err := s.SelectImage(idx); err == nil {
			s = selected
		}
	}

	return s.SetQuantityInput(quantity), nil
}

// ImageCount is the number of selectable images
func (s Product) ImageCount() int {
	return s.imageCount
}

// SelectImage makes image i the previewed one.
// Indices outside the gallery are refused and the state is returned unchanged.
func (s Product) SelectImage(i int) (Product, error) {
	if i < 0 || i >= s.imageCount {
		return s, ErrImageOutOfRange
	}
	s.SelectedImage = i
	return s, nil
}

// IsSelected reports whether thumbnail i is the active one
func (s Product) IsSelected(i int) bool {
	return s.SelectedImage == i
}

// Increment adds one to the quantity. There is no upper bound tied to stock;
// over-ordering is left for checkout to reject.
func (s Product) Increment() Product {
	if s.Quantity < math.MaxInt {
		s.Quantity++
	}
	return s
}

// Decrement subtracts one from the quantity, stopping at MinQuantity
func (s Product) Decrement() Product {
	s.Quantity = max(MinQuantity, s.Quantity-1)
	return s
}

// SetQuantityInput sets the quantity from raw user input (see ParseQuantity)
func (s Product) SetQuantityInput(input string) Product {
	s.Quantity = ParseQuantity(input)
	return s
}

// Apply performs one stepper operation. Unknown operations leave the state as is.
func (s Product) Apply(op, value string) Product {
	switch op {
	case OpIncrement:
		return s.Increment()
	case OpDecrement:
		return s.Decrement()
	case OpSet:
		return s.SetQuantityInput(value)
	}
	return s
}

// ParseQuantity reads the leading integer of input, ignoring leading whitespace
// and any trailing characters ("12 pcs" is 12). Input with no leading digits,
// values below MinQuantity, and values too large for an int all become MinQuantity.
func ParseQuantity(input string) int {
	s := strings.TrimLeft(input, " \t\r\n\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return MinQuantity
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < MinQuantity {
		return MinQuantity
	}
	return n
}
