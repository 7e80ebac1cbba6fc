package seed

// File is the top-level structure of a seed file.
//
//	books:
//	  - name: Clean Code
//	    author: Robert C. Martin
//	    pageCount: 464
//	    readPage: 120
//	    reading: true
type File struct {
	Books []Entry `yaml:"books"`
}

// Entry mirrors the create payload.
type Entry struct {
	Name      string `yaml:"name"`
	Year      string `yaml:"year,omitempty"` // number or free text
	Author    string `yaml:"author,omitempty"`
	Summary   string `yaml:"summary,omitempty"`
	Publisher string `yaml:"publisher,omitempty"`
	PageCount int    `yaml:"pageCount"`
	ReadPage  int    `yaml:"readPage"`
	Reading   bool   `yaml:"reading,omitempty"`
}
