package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpaginate [flags] [source]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split long Markdown posts and pages into numbered parts plus a single")
	fmt.Fprintln(w, "view-all page, and write the site to the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    Site root (default: config 'source', then current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default <source>/_config.yml)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default <source>/_paginated)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -n, --dry-run             Print the files that would be written")
	fmt.Fprintln(w, "      --exclude <dirs>      Directories to skip, relative to the source")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Selection:")
	fmt.Fprintln(w, "      --collection <names>  Collections to paginate (default: posts, pages)")
	fmt.Fprintln(w, "  -a, --auto                Paginate every item containing the separator")
	fmt.Fprintln(w, "      --disable             Copy the site without paginating")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markers:")
	fmt.Fprintln(w, "      --separator <s>       Page separator (default <!--page-->)")
	fmt.Fprintln(w, "      --header <s>          Header marker (default <!--page_header-->)")
	fmt.Fprintln(w, "      --footer <s>          Footer marker (default <!--page_footer-->)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Permalinks and titles:")
	fmt.Fprintln(w, "      --permalink <s>       Part permalink (default /:num/; :num, :max)")
	fmt.Fprintln(w, "      --single-page <s>     Single page permalink (default /view-all/)")
	fmt.Fprintln(w, "      --title <s>           Part title (:title, :num, :max)")
	fmt.Fprintln(w, "      --retitle-first       Apply --title to the first part too")
	fmt.Fprintln(w, "      --trail-before <n>    Trail entries before the current page (0 = all)")
	fmt.Fprintln(w, "      --trail-after <n>     Trail entries after the current page (0 = all)")
	fmt.Fprintln(w, "      --trail-title <s>     Trail entry title (default: --title)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SEO:")
	fmt.Fprintln(w, "      --site-url <url>      Site URL for SEO links (default: config canonical, url)")
	fmt.Fprintln(w, "      --no-seo-canonical    Omit the canonical link")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "  -V, --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDPAGINATE_CONFIG, MDPAGINATE_SOURCE_DIR, MDPAGINATE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDPAGINATE_SITE_URL, MDPAGINATE_COLLECTIONS, MDPAGINATE_SEPARATOR,")
	fmt.Fprintln(w, "  MDPAGINATE_PERMALINK, MDPAGINATE_AUTO, MDPAGINATE_WORKERS")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 item failures or unexpected error, 2 usage or config, 3 I/O")
}
