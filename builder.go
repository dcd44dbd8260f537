// FILE: lixenwraith/daylog/builder.go
package daylog

// Builder provides a fluent API for building writer configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a daily-file Writer with the specified configuration.
func (b *Builder) Build() (*Writer, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewWriterFromConfig(b.cfg.Clone())
}

// BuildDateDir creates a DateDirWriter with the specified configuration.
func (b *Builder) BuildDateDir() (*DateDirWriter, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewDateDirWriterFromConfig(b.cfg.Clone())
}

// Config returns a copy of the configuration built so far.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// Directory sets the root directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// TypeLabel sets the file name prefix of the daily-file writer.
func (b *Builder) TypeLabel(label string) *Builder {
	b.cfg.TypeLabel = label
	return b
}

// FileName sets the fixed output file of the date directory writer.
func (b *Builder) FileName(name string) *Builder {
	b.cfg.FileName = name
	return b
}

// RetentionDays sets how many days output is kept.
func (b *Builder) RetentionDays(days int64) *Builder {
	b.cfg.RetentionDays = days
	return b
}

// Encoding sets the charset of written lines.
func (b *Builder) Encoding(label string) *Builder {
	b.cfg.Encoding = label
	return b
}

// Extension sets the extension of daily files.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// Append chooses appending over truncating.
func (b *Builder) Append(enable bool) *Builder {
	b.cfg.Append = enable
	return b
}

// Sanitize sets the message sanitizing mode ("raw" or "txt").
func (b *Builder) Sanitize(mode string) *Builder {
	b.cfg.Sanitize = mode
	return b
}

// InternalErrorsToStderr enables library diagnostics on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Override applies "key=value" overrides, deferring any error to Build.
func (b *Builder) Override(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.cfg.ApplyOverride(overrides...); err != nil {
		b.err = err
	}
	return b
}

// FromFile replaces the configuration with one loaded from a TOML file.
func (b *Builder) FromFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg = cfg
	return b
}
