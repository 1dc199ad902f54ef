package viewstate

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func mustNew(t *testing.T, images int) Product {
	t.Helper()
	s, err := New(images)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", images, err)
	}
	return s
}

func TestNewInitialState(t *testing.T) {
	s := mustNew(t, 3)
	if s.SelectedImage != 0 {
		t.Errorf("expected first image selected, got %d", s.SelectedImage)
	}
	if s.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", s.Quantity)
	}
	if s.ImageCount() != 3 {
		t.Errorf("expected 3 images, got %d", s.ImageCount())
	}
}

func TestNewWithoutImages(t *testing.T) {
	if _, err := New(0); !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}
}

func TestSelectImage(t *testing.T) {
	s := mustNew(t, 4)

	for i := 0; i < 4; i++ {
		next, err := s.SelectImage(i)
		if err != nil {
			t.Fatalf("SelectImage(%d) failed: %v", i, err)
		}
		if next.SelectedImage != i {
			t.Errorf("SelectImage(%d) selected %d", i, next.SelectedImage)
		}

		active := 0
		for j := 0; j < 4; j++ {
			if next.IsSelected(j) {
				active++
				if j != i {
					t.Errorf("thumbnail %d active after selecting %d", j, i)
				}
			}
		}
		if active != 1 {
			t.Errorf("expected exactly one active thumbnail, got %d", active)
		}
	}
}

func TestSelectImageOutOfRange(t *testing.T) {
	s := mustNew(t, 2)
	s, _ = s.SelectImage(1)

	for _, idx := range []int{-1, 2, 99} {
		next, err := s.SelectImage(idx)
		if !errors.Is(err, ErrImageOutOfRange) {
			t.Errorf("SelectImage(%d): expected ErrImageOutOfRange, got %v", idx, err)
		}
		if next != s {
			t.Errorf("SelectImage(%d) changed state to %+v", idx, next)
		}
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := mustNew(t, 2)
	_ = s.Increment()
	_, _ = s.SelectImage(1)
	if s.Quantity != 1 || s.SelectedImage != 0 {
		t.Errorf("receiver mutated: %+v", s)
	}
}

func TestDecrementFloor(t *testing.T) {
	s := mustNew(t, 1)
	s = s.Decrement()
	if s.Quantity != 1 {
		t.Errorf("decrement at 1 should be a no-op, got %d", s.Quantity)
	}

	s = s.Increment().Increment().Decrement()
	if s.Quantity != 2 {
		t.Errorf("expected 2, got %d", s.Quantity)
	}
}

func TestQuantityNeverBelowOne(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := mustNew(t, 1)

	for i := 0; i < 10000; i++ {
		if rng.Intn(3) == 0 {
			s = s.Increment()
		} else {
			s = s.Decrement()
		}
		if s.Quantity < MinQuantity {
			t.Fatalf("quantity dropped to %d after %d steps", s.Quantity, i+1)
		}
	}
}

func TestIncrementIsNotClampedToStock(t *testing.T) {
	s := mustNew(t, 1)
	for i := 0; i < 50; i++ {
		s = s.Increment()
	}
	if s.Quantity != 51 {
		t.Errorf("expected 51, got %d", s.Quantity)
	}
}

func TestIncrementAtMaxInt(t *testing.T) {
	s := mustNew(t, 1)
	s.Quantity = math.MaxInt
	if got := s.Increment().Quantity; got != math.MaxInt {
		t.Errorf("expected increment to saturate, got %d", got)
	}
}

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		input string
		want  int
	}{
		{"abc", 1},
		{"", 1},
		{"-5", 1},
		{"0", 1},
		{"7", 7},
		{"+7", 7},
		{"  12", 12},
		{"12 pcs", 12},
		{"3.9", 3},
		{"-", 1},
		{"99999999999999999999999", 1},
	}

	for _, tc := range testCases {
		if got := ParseQuantity(tc.input); got != tc.want {
			t.Errorf("ParseQuantity(%q) = %d; want %d", tc.input, got, tc.want)
		}
	}
}

func TestApply(t *testing.T) {
	s := mustNew(t, 1)

	s = s.Apply(OpIncrement, "")
	s = s.Apply(OpIncrement, "")
	if s.Quantity != 3 {
		t.Fatalf("expected 3 after two increments, got %d", s.Quantity)
	}

	s = s.Apply(OpDecrement, "")
	if s.Quantity != 2 {
		t.Errorf("expected 2 after decrement, got %d", s.Quantity)
	}

	s = s.Apply(OpSet, "7")
	if s.Quantity != 7 {
		t.Errorf("expected 7 after set, got %d", s.Quantity)
	}

	s = s.Apply(OpSet, "abc")
	if s.Quantity != 1 {
		t.Errorf("expected coercion to 1, got %d", s.Quantity)
	}

	before := s
	if s = s.Apply("explode", "5"); s != before {
		t.Errorf("unknown op changed state to %+v", s)
	}
}

func TestRestore(t *testing.T) {
	testCases := []struct {
		name      string
		image     string
		quantity  string
		wantImage int
		wantQty   int
	}{
		{"defaults", "", "", 0, 1},
		{"valid values", "2", "4", 2, 4},
		{"image out of range", "3", "4", 0, 4},
		{"negative image", "-1", "2", 0, 2},
		{"garbage", "x", "abc", 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Restore(3, tc.image, tc.quantity)
			if err != nil {
				t.Fatalf("Restore failed: %v", err)
			}
			if s.SelectedImage != tc.wantImage || s.Quantity != tc.wantQty {
				t.Errorf("got image %d qty %d; want image %d qty %d",
					s.SelectedImage, s.Quantity, tc.wantImage, tc.wantQty)
			}
		})
	}

	if _, err := Restore(0, "0", "1"); !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}
}
