package models

// ComicEntry is one comic folder found directly under the library root.
type ComicEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	PageCount int    `json:"pageCount"`
}

// PageEntry is one image inside a comic folder.
// RelativePath is slash-separated and relative to the comic folder.
type PageEntry struct {
	Index        int    `json:"index"`
	Filename     string `json:"filename"`
	RelativePath string `json:"relativePath"`
}

// FileStat is the size and modification time (milliseconds since the Unix
// epoch) of one file, used to build HTTP cache validators.
type FileStat struct {
	Size  int64 `json:"size"`
	MTime int64 `json:"mtime"`
}
