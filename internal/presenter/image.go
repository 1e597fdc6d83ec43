package presenter

import "encoding/json"

// FallbackImageURL replaces a product image that failed to load.
const FallbackImageURL = "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&q=80&w=1000"

// ImageState is the load state of a card image.
type ImageState string

const (
	ImageStatePrimary  ImageState = "primary"
	ImageStateFallback ImageState = "fallback"
)

// ImageSource resolves the src of a card image. It starts in the primary
// state and moves to the fallback state at most once.
type ImageSource struct {
	primary string
	state   ImageState
}

// NewImageSource returns an image source in the primary state.
func NewImageSource(url string) ImageSource {
	return ImageSource{primary: url, state: ImageStatePrimary}
}

// Src returns the URL that should be displayed.
func (s ImageSource) Src() string {
	if s.state == ImageStateFallback {
		return FallbackImageURL
	}
	return s.primary
}

// Primary returns the product's own image URL regardless of state.
func (s ImageSource) Primary() string {
	return s.primary
}

// State returns the current load state.
func (s ImageSource) State() ImageState {
	if s.state == "" {
		return ImageStatePrimary
	}
	return s.state
}

// Fail records a load failure. Only the first call changes the state;
// it reports whether the source switched to the fallback.
func (s *ImageSource) Fail() bool {
	if s.state == ImageStateFallback {
		return false
	}
	s.state = ImageStateFallback
	return true
}

// MarshalJSON exposes the resolved src along with the state.
func (s ImageSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Src     string     `json:"src"`
		Primary string     `json:"primary"`
		State   ImageState `json:"state"`
	}{
		Src:     s.Src(),
		Primary: s.primary,
		State:   s.State(),
	})
}
