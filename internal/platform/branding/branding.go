// Package branding holds product naming shared by rendered pages.
package branding

// AppName is the product name used in page titles and the footer.
const AppName = "Mentoria Acelera Clínicas"

// TitleSuffix joins a page title with the product name.
func TitleSuffix(title string) string {
	if title == "" {
		return AppName
	}
	return title + " | " + AppName
}
