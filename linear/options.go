package linear

// Option is a function that configures a Ridge model.
type Option func(*Ridge)

// WithAlpha sets the regularization strength. Values below zero are
// rejected at fit time.
func WithAlpha(alpha float64) Option {
	return func(r *Ridge) {
		r.alpha = alpha
	}
}
