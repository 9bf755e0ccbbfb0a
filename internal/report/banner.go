package report

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
)

// BannerOptions configures the startup banner display.
type BannerOptions struct {
	ShowBanner  bool
	ShowVersion bool
	ShowLicense bool
}

// DefaultBannerOptions returns the banner config used when no flags
// suppress it.
func DefaultBannerOptions() BannerOptions {
	return BannerOptions{ShowBanner: true, ShowVersion: true, ShowLicense: true}
}

// PrintBanner writes the ASCII logo and version/license lines to w.
func PrintBanner(w io.Writer, version string, opts BannerOptions) {
	if w == nil {
		return
	}

	if !opts.ShowBanner {
		if opts.ShowVersion {
			fmt.Fprintf(w, "RoboVM Shaker v%s\n", version)
		}
		if opts.ShowLicense {
			fmt.Fprintln(w, "Apache-2.0 License | https://robovm.mobidevelop.com")
		}
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, GetASCIILogo())
	if opts.ShowVersion {
		fmt.Fprintf(w, "RoboVM Shaker v%s\n", version)
	}
	if opts.ShowLicense {
		fmt.Fprintln(w, "Apache-2.0 License | https://robovm.mobidevelop.com")
	}
	fmt.Fprintln(w)
}

// GetASCIILogo generates the ASCII art logo for "RoboVM".
func GetASCIILogo() string {
	fig := figure.NewFigure("RoboVM", "standard", true)
	return fig.String()
}

// GetCompactBanner returns a single-line banner for non-TTY output.
func GetCompactBanner(version string) string {
	return fmt.Sprintf("RoboVM Shaker v%s | Apache-2.0 | https://robovm.mobidevelop.com", version)
}

// ShouldShowBanner reports whether the full ASCII banner should render:
// never when --no-banner is set, otherwise only on a TTY.
func ShouldShowBanner(isTTY bool, noBannerFlag bool) bool {
	if noBannerFlag {
		return false
	}
	return isTTY
}
