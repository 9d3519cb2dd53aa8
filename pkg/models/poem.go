package models

// InputRecord is one element of the raw source array.
type InputRecord struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// Poem is the reshaped record. Field order here is the serialized key order.
type Poem struct {
	Title        string `json:"title" yaml:"title" toml:"title"`
	Author       string `json:"author" yaml:"author" toml:"author"`
	Dynasty      string `json:"dynasty" yaml:"dynasty" toml:"dynasty"`
	Content      string `json:"content" yaml:"content" toml:"content"`
	Appreciation string `json:"appreciation" yaml:"appreciation" toml:"appreciation"`
}
