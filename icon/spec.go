package icon

import "fmt"

// Spec describes one render: the square pixel size and the file the result
// is written to. A Spec is built immediately before rendering and holds no
// identity beyond its path.
type Spec struct {
	Size       int
	OutputPath string
}

// ForSize builds the Spec for a standard icon, named icon{size}.png in the
// working directory.
func ForSize(size int) Spec {
	return Spec{
		Size:       size,
		OutputPath: fmt.Sprintf("icon%d.png", size),
	}
}
