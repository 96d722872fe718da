package ports

// RootLocator finds the project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=root_locator.go -destination=mocks/mock_root_locator.go -package=mocks
type RootLocator interface {
	// FindRoot returns the absolute directory containing package.json, searching
	// upward from the locator's start directory.
	FindRoot() (string, error)

	// ProjectName returns the name declared in the package.json under root.
	// It returns an empty string when the manifest has no name.
	ProjectName(root string) (string, error)
}
