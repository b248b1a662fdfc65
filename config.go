package revealdown

import "fmt"

// Config controls how BuildSlides partitions and wraps a document.
type Config struct {
	// AddHeaderFooter wraps the slides in Header and Footer.
	AddHeaderFooter bool
	// SlideLevel is the deepest heading level that starts a new slide.
	// Headings one level below start a sub-slide.
	SlideLevel int
	// HorizontalRuleBreaksSlide turns a leading <hr> into a sub-slide
	// separator. The rule itself is dropped.
	HorizontalRuleBreaksSlide bool

	Header      string
	Footer      string
	SlidesOpen  string
	SlidesClose string
}

// Option modifies a Config.
type Option func(*Config)

func DefaultConfig() Config {
	return Config{
		AddHeaderFooter:           true,
		SlideLevel:                1,
		HorizontalRuleBreaksSlide: false,
		Header:                    DefaultHeader,
		Footer:                    DefaultFooter,
		SlidesOpen:                DefaultSlidesOpen,
		SlidesClose:               DefaultSlidesClose,
	}
}

// NewConfig returns the default config with opts applied in order.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	c.Apply(opts...)
	return c
}

func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

func (c Config) Validate() error {
	if c.SlideLevel < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSlideLevel, c.SlideLevel)
	}
	return nil
}

func WithSlideLevel(level int) Option {
	return func(c *Config) {
		c.SlideLevel = level
	}
}

func WithHorizontalRuleBreaks(enabled bool) Option {
	return func(c *Config) {
		c.HorizontalRuleBreaksSlide = enabled
	}
}

func WithHeaderFooter(enabled bool) Option {
	return func(c *Config) {
		c.AddHeaderFooter = enabled
	}
}

func WithHeader(header string) Option {
	return func(c *Config) {
		c.Header = header
	}
}

func WithFooter(footer string) Option {
	return func(c *Config) {
		c.Footer = footer
	}
}
