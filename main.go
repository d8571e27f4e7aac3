// Package main provides the entry point for the mediahound application.
// It analyzes media files through the native MediaInfo library and writes
// detailed container reports, and can scan whole directory trees into a
// queryable catalog.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/torre76/mediahound/catalog"
	"github.com/torre76/mediahound/mediainfo"
)

// Private constants (alphabetical)

// scanWorkers is the number of files analyzed concurrently by the scan
// command. The native library does the heavy lifting per file, so a small
// pool keeps disks busy without thrashing.
const scanWorkers = 4

// Private variables (alphabetical)

// mediaExtensions lists the file extensions the scan command considers
// media files. Everything else in a scanned tree is skipped.
var mediaExtensions = map[string]bool{
	".3gp":  true,
	".aac":  true,
	".ac3":  true,
	".avi":  true,
	".dts":  true,
	".flac": true,
	".flv":  true,
	".m2ts": true,
	".m4a":  true,
	".m4v":  true,
	".mka":  true,
	".mkv":  true,
	".mov":  true,
	".mp3":  true,
	".mp4":  true,
	".mpg":  true,
	".mpeg": true,
	".mts":  true,
	".ogg":  true,
	".ogm":  true,
	".opus": true,
	".rm":   true,
	".rmvb": true,
	".ts":   true,
	".vob":  true,
	".wav":  true,
	".webm": true,
	".wma":  true,
	".wmv":  true,
}

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'github.com/torre76/mediahound.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// buildLogger returns the logger wired into the library layers. Verbose
// mode prints structured events to the console; otherwise everything is
// discarded.
func buildLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// collectMediaFiles walks a directory tree and returns the paths of every
// media file in it, in walk order.
func collectMediaFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if mediaExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// formatDuration formats seconds into a human-readable duration string
// such as "10.5 seconds" or "1 hour, 2 minutes and 13 seconds".
func formatDuration(seconds float64) string {
	// Return seconds with appropriate formatting if less than 60 seconds
	if seconds < 60 {
		// Check if it's a whole number
		if seconds == float64(int(seconds)) {
			return fmt.Sprintf("%d seconds", int(seconds))
		}
		return fmt.Sprintf("%.3f seconds", seconds)
	}

	duration := time.Duration(seconds * float64(time.Second))
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	secs := int(duration.Seconds()) % 60

	var parts []string
	if hours > 0 {
		if hours == 1 {
			parts = append(parts, "1 hour")
		} else {
			parts = append(parts, fmt.Sprintf("%d hours", hours))
		}
	}
	if minutes > 0 {
		if minutes == 1 {
			parts = append(parts, "1 minute")
		} else {
			parts = append(parts, fmt.Sprintf("%d minutes", minutes))
		}
	}
	if secs > 0 || (hours == 0 && minutes == 0) {
		if secs == 1 {
			parts = append(parts, "1 second")
		} else {
			parts = append(parts, fmt.Sprintf("%d seconds", secs))
		}
	}

	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	case 3:
		return parts[0] + ", " + parts[1] + " and " + parts[2]
	default:
		return fmt.Sprintf("%.3f seconds", seconds)
	}
}

// formatHumanReadableSize formats a size in bytes to a human-readable
// format.
func formatHumanReadableSize(bytes int64) string {
	const (
		_          = iota
		KB float64 = 1 << (10 * iota)
		MB
		GB
		TB
	)

	if bytes < 1000 {
		return fmt.Sprintf("%d bytes", bytes)
	} else if bytes < 1000*int64(KB) {
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	} else if bytes < 1000*int64(MB) {
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	} else if bytes < 1000*int64(GB) {
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	}
	return fmt.Sprintf("%.2f TB", float64(bytes)/TB)
}

// formatWithThousandSeparators formats an integer with thousand separators.
// It takes an int64 value and returns a string with commas separating thousands.
func formatWithThousandSeparators(n int64) string {
	// Convert the number to a string
	inStr := strconv.FormatInt(n, 10)

	// If the number is negative, handle the sign separately
	sign := ""
	if n < 0 {
		sign = "-"
		inStr = inStr[1:] // Remove the negative sign for processing
	}

	// Add thousand separators
	var result strings.Builder
	for i, c := range inStr {
		if i > 0 && (len(inStr)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}

	// Add back the sign if needed
	return sign + result.String()
}

// containerTitle returns the display title of a container: the title tag
// when one is stored, otherwise the bare file name.
func containerTitle(info *mediainfo.ContainerInfo) string {
	if info.General.Title != "" {
		return info.General.Title
	}
	if info.General.CompleteName != "" {
		return filepath.Base(info.General.CompleteName)
	}
	return "Unknown"
}

// loadLibrary loads the native MediaInfo library with the CLI settings and
// prints where it was found.
func loadLibrary(c *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	opts := []mediainfo.LoadOption{
		mediainfo.WithLogger(buildLogger(c.Bool("verbose"))),
	}
	if library := c.String("library"); library != "" {
		opts = append(opts, mediainfo.WithLibraryPath(library))
	}
	if err := mediainfo.Load(opts...); err != nil {
		return fmt.Errorf("error loading the MediaInfo library: %w", err)
	}

	version, err := mediainfo.Version()
	if err != nil {
		return fmt.Errorf("error querying the MediaInfo version: %w", err)
	}
	regularStyle.Printf("🔧 Using MediaInfo at ")
	valueStyle.Printf("%s\n", mediainfo.LibraryPath())
	regularStyle.Printf("🔖 Library version: ")
	valueStyle.Printf("%s\n\n", version)
	return nil
}

// printContainerSummary prints a simplified summary of the container
// information: the file title and the per-kind stream counts with proper
// pluralization.
func printContainerSummary(info *mediainfo.ContainerInfo) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	// Initialize pluralize client
	pluralizeClient := pluralize.NewClient()

	fileName := ""
	if info.General.CompleteName != "" {
		fileName = filepath.Base(info.General.CompleteName)
	}

	// Print the file name with proper styling
	summaryStyle.Println("📊 FILE ANALYSIS")
	regularStyle.Println("----------------")
	fmt.Println()
	regularStyle.Printf("🎬 Working on: ")
	valueStyle.Printf("%s [%s]\n", containerTitle(info), fileName)

	// Count the streams
	videoCount := len(info.VideoStreams)
	audioCount := len(info.AudioStreams)
	subtitleCount := len(info.SubtitleStreams)

	// Print the stream counts with proper pluralization
	summaryStyle.Println("\nℹ️ STREAM SUMMARY")
	regularStyle.Println("----------------")

	// Video streams
	regularStyle.Printf("🎞️ %d ", videoCount)
	valueStyle.Println(pluralizeClient.Pluralize("video stream", videoCount, false))

	// Audio streams
	regularStyle.Printf("🔊 %d ", audioCount)
	valueStyle.Println(pluralizeClient.Pluralize("audio stream", audioCount, false))

	// Subtitle streams
	regularStyle.Printf("💬 %d ", subtitleCount)
	valueStyle.Println(pluralizeClient.Pluralize("subtitle track", subtitleCount, false))
}

// saveContainerJSON saves the container snapshot as JSON in the output
// directory.
func saveContainerJSON(info *mediainfo.ContainerInfo, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, "mediainfo.json")
	encoded, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding container info: %w", err)
	}
	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("error writing container info: %w", err)
	}
	return nil
}

// saveMediaInfoText saves detailed container information to a text file in
// the specified directory. It includes comprehensive information about the
// container and all streams.
func saveMediaInfoText(info *mediainfo.ContainerInfo, outputDir string) error {
	// Create the output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	// Define output file path
	outputPath := filepath.Join(outputDir, "mediainfo.txt")

	// Create the file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating mediainfo file: %w", err)
	}
	defer file.Close()

	// Initialize tabwriter for better formatting
	w := tabwriter.NewWriter(file, 0, 0, 2, ' ', tabwriter.StripEscape)

	fileName := ""
	if info.General.CompleteName != "" {
		fileName = filepath.Base(info.General.CompleteName)
	}

	// Write the different sections of the report
	writeMediaInfoHeader(w, containerTitle(info), fileName, info)
	writeMediaInfoContainerSection(w, info)
	writeMediaInfoVideoStreams(w, info.VideoStreams)
	writeMediaInfoAudioStreams(w, info.AudioStreams)
	writeMediaInfoSubtitleStreams(w, info.SubtitleStreams)
	writeMediaInfoMenus(w, info.MenuStreams)
	writeMediaInfoFooter(w)

	// Flush buffered data to ensure it's written to the file
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error flushing output: %w", err)
	}

	return nil
}

func versionPrinter(c *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("🐾 MediaHound %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// writeMediaInfoAudioStreams writes audio stream information.
func writeMediaInfoAudioStreams(w *tabwriter.Writer, streams []mediainfo.AudioInfo) {
	if len(streams) == 0 {
		return
	}

	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "AUDIO STREAMS")
	fmt.Fprintln(w, "===========================================")

	for i, stream := range streams {
		fmt.Fprintf(w, "\nStream #%d:\n", i)
		fmt.Fprintf(w, "  Codec:\t%s", stream.Codec)
		if stream.CodecID != "" {
			fmt.Fprintf(w, " (%s)", stream.CodecID)
		}
		fmt.Fprintln(w)

		if stream.Title != "" {
			fmt.Fprintf(w, "  Title:\t%s\n", stream.Title)
		}

		fmt.Fprintf(w, "  Channels:\t%d", stream.Channels)
		if stream.ChannelLayout != "" {
			fmt.Fprintf(w, " (%s)", stream.ChannelLayout)
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "  Sampling Rate:\t%s Hz\n", formatWithThousandSeparators(int64(stream.SamplingRate)))

		if stream.BitRate > 0 {
			fmt.Fprintf(w, "  Bit Rate:\t%.2f Kbps\n", float64(stream.BitRate)/1000)
		}

		if stream.CompressionMode != "" {
			fmt.Fprintf(w, "  Compression:\t%s\n", stream.CompressionMode)
		}

		if stream.Language != "" {
			fmt.Fprintf(w, "  Language:\t%s\n", stream.Language)
		}

		if stream.Default {
			fmt.Fprintln(w, "  Default:\tYes")
		}
	}
	fmt.Fprintln(w)
}

// writeMediaInfoContainerSection writes the container information section.
func writeMediaInfoContainerSection(w *tabwriter.Writer, info *mediainfo.ContainerInfo) {
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "CONTAINER INFORMATION")
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Format:\t%s\n", info.General.Format)
	if info.General.FormatVersion != "" {
		fmt.Fprintf(w, "Format Version:\t%s\n", info.General.FormatVersion)
	}

	// Format the duration both as seconds and human-readable form
	humanDuration := formatDuration(info.General.Duration)

	// Format seconds as integer if it's a whole number
	var durationStr string
	if info.General.Duration == float64(int(info.General.Duration)) {
		durationStr = fmt.Sprintf("%d seconds", int(info.General.Duration))
	} else {
		durationStr = fmt.Sprintf("%.3f seconds", info.General.Duration)
	}

	fmt.Fprintf(w, "Duration:\t%s (%s)\n", durationStr, humanDuration)
	fmt.Fprintf(w, "Size:\t%s\n", formatHumanReadableSize(info.General.FileSize))
	if info.General.OverallBitRate > 0 {
		fmt.Fprintf(w, "Bitrate:\t%.2f Kbps\n", float64(info.General.OverallBitRate)/1000)
	}
	if info.General.WritingApplication != "" {
		fmt.Fprintf(w, "Writing Application:\t%s\n", info.General.WritingApplication)
	}
	if info.General.WritingLibrary != "" {
		fmt.Fprintf(w, "Writing Library:\t%s\n", info.General.WritingLibrary)
	}
	if !info.General.EncodedDate.IsZero() {
		fmt.Fprintf(w, "Encoded:\t%s\n", info.General.EncodedDate.Format(time.RFC1123))
	}
	fmt.Fprintln(w)
}

// writeMediaInfoFooter writes the footer with metadata about when the
// report was generated.
func writeMediaInfoFooter(w *tabwriter.Writer) {
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintf(w, "Analysis Generated: %s\n", time.Now().Format(time.RFC1123))
	fmt.Fprintf(w, "MediaHound Version: %s\n", Version)
	fmt.Fprintln(w, "===========================================")
}

// writeMediaInfoHeader writes the header section of the media info file.
func writeMediaInfoHeader(w *tabwriter.Writer, containerTitle, fileName string, info *mediainfo.ContainerInfo) {
	pluralizeClient := pluralize.NewClient()

	// Write summary header
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "MEDIA INFORMATION SUMMARY")
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w)

	// Title and filename
	fmt.Fprintf(w, "Title:\t%s\n", containerTitle)
	fmt.Fprintf(w, "Filename:\t%s\n", fileName)
	fmt.Fprintln(w)

	// Stream counts
	videoCount := len(info.VideoStreams)
	audioCount := len(info.AudioStreams)
	subtitleCount := len(info.SubtitleStreams)
	fmt.Fprintf(w, "Streams:\t%d %s, %d %s, %d %s\n",
		videoCount, pluralizeClient.Pluralize("video stream", videoCount, false),
		audioCount, pluralizeClient.Pluralize("audio stream", audioCount, false),
		subtitleCount, pluralizeClient.Pluralize("subtitle track", subtitleCount, false))
	fmt.Fprintln(w)
}

// writeMediaInfoMenus writes menu and chapter information.
func writeMediaInfoMenus(w *tabwriter.Writer, menus []mediainfo.MenuInfo) {
	if len(menus) == 0 {
		return
	}

	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "CHAPTERS")
	fmt.Fprintln(w, "===========================================")

	for _, menu := range menus {
		for i, chapter := range menu.Chapters {
			fmt.Fprintf(w, "\nChapter #%d:\n", i+1)
			if chapter.Title != "" {
				fmt.Fprintf(w, "  Title:\t%s\n", chapter.Title)
			}

			// Format the start position
			var positionStr string
			if chapter.Position == float64(int(chapter.Position)) {
				positionStr = fmt.Sprintf("%d seconds", int(chapter.Position))
			} else {
				positionStr = fmt.Sprintf("%.3f seconds", chapter.Position)
			}
			fmt.Fprintf(w, "  Start Time:\t%s\n", positionStr)

			if chapter.Language != "" {
				fmt.Fprintf(w, "  Language:\t%s\n", chapter.Language)
			}
		}
	}
	fmt.Fprintln(w)
}

// writeMediaInfoSubtitleStreams writes subtitle stream information.
func writeMediaInfoSubtitleStreams(w *tabwriter.Writer, streams []mediainfo.SubtitleInfo) {
	if len(streams) == 0 {
		return
	}

	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "SUBTITLE STREAMS")
	fmt.Fprintln(w, "===========================================")

	for i, stream := range streams {
		fmt.Fprintf(w, "\nStream #%d:\n", i)
		fmt.Fprintf(w, "  Format:\t%s\n", stream.Format)

		if stream.Title != "" {
			fmt.Fprintf(w, "  Title:\t%s\n", stream.Title)
		}

		if stream.Language != "" {
			fmt.Fprintf(w, "  Language:\t%s\n", stream.Language)
		}

		if stream.ElementCount > 0 {
			fmt.Fprintf(w, "  Elements:\t%d\n", stream.ElementCount)
		}

		if stream.Default {
			fmt.Fprintln(w, "  Default:\tYes")
		}
		if stream.Forced {
			fmt.Fprintln(w, "  Forced:\tYes")
		}
	}
	fmt.Fprintln(w)
}

// writeMediaInfoVideoStreams writes video stream information.
func writeMediaInfoVideoStreams(w *tabwriter.Writer, streams []mediainfo.VideoInfo) {
	if len(streams) == 0 {
		return
	}

	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "VIDEO STREAMS")
	fmt.Fprintln(w, "===========================================")

	for i, stream := range streams {
		fmt.Fprintf(w, "\nStream #%d:\n", i)
		fmt.Fprintf(w, "  Codec:\t%s", stream.Codec)
		if stream.CodecID != "" {
			fmt.Fprintf(w, " (%s)", stream.CodecID)
		}
		fmt.Fprintln(w)

		if stream.FormatProfile != "" {
			fmt.Fprintf(w, "  Codec Profile:\t%s\n", stream.FormatProfile)
		}

		if stream.Title != "" {
			fmt.Fprintf(w, "  Title:\t%s\n", stream.Title)
		}

		fmt.Fprintf(w, "  Resolution:\t%dx%d pixels\n", stream.Width, stream.Height)
		if stream.DisplayAspectRatio > 0 {
			fmt.Fprintf(w, "  Aspect Ratio:\t%.3f\n", stream.DisplayAspectRatio)
		}
		fmt.Fprintf(w, "  Frame Rate:\t%.3f fps\n", stream.FrameRate)

		if stream.BitRate > 0 {
			fmt.Fprintf(w, "  Bit Rate:\t%.2f Kbps\n", float64(stream.BitRate)/1000)
		}

		if stream.BitDepth > 0 {
			fmt.Fprintf(w, "  Bit Depth:\t%d bits\n", stream.BitDepth)
		}

		if stream.ColorSpace != "" {
			fmt.Fprintf(w, "  Color Space:\t%s\n", stream.ColorSpace)
		}

		if stream.ScanType != "" {
			fmt.Fprintf(w, "  Scan Type:\t%s\n", stream.ScanType)
		}

		if stream.HDR {
			hdrFormat := stream.HDRFormat
			if hdrFormat == "" {
				hdrFormat = stream.TransferCharacteristics
			}
			fmt.Fprintf(w, "  HDR:\t%s\n", hdrFormat)
		}

		if stream.Language != "" {
			fmt.Fprintf(w, "  Language:\t%s\n", stream.Language)
		}
	}
	fmt.Fprintln(w)
}

// Public functions (alphabetical)

// analyzeCommand implements the default command which analyzes a media file.
// It opens the file through the native library, prints a summary, and writes
// a detailed report into the output directory.
func analyzeCommand(c *cli.Context) error {
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)
	errorStyle := color.New(color.FgRed)

	// Get the file path from the first argument
	if c.NArg() < 1 {
		// Display a more user-friendly message and usage information
		errorStyle.Printf("❌ Error: missing required argument: MEDIA_FILE\n\n")
		regularStyle.Printf("Usage: %s [options] MEDIA_FILE\n", c.App.Name)
		regularStyle.Printf("Run '%s --help' for more information.\n", c.App.Name)
		return fmt.Errorf("missing required argument: MEDIA_FILE")
	}
	filePath := c.Args().Get(0)
	outputDir := c.String("dir")

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", absPath)
	}

	if err := loadLibrary(c); err != nil {
		return err
	}

	file, err := mediainfo.Open(absPath)
	if err != nil {
		errorStyle.Printf("❌ Container not recognized: %v\n", err)
		return fmt.Errorf("container not recognized: %w", err)
	}
	defer file.Close()

	// Expose every parameter the parser found when asked to
	if c.Bool("full") {
		file.Option("Complete", "1")
	}

	// The native text dump replaces the report entirely
	if c.Bool("inform") {
		fmt.Println(file.Inform())
		return nil
	}

	containerInfo := file.ContainerInfo()

	// Print simplified container summary with container title
	printContainerSummary(containerInfo)

	// Save the report in the requested shape
	if c.Bool("json") {
		err = saveContainerJSON(containerInfo, outputDir)
	} else {
		err = saveMediaInfoText(containerInfo, outputDir)
	}
	if err != nil {
		return fmt.Errorf("error saving media info: %w", err)
	}

	successStyle.Printf("\n✅ Container information saved to %s\n", outputDir)
	return nil
}

// paramsCommand dumps the native library's own table of every parameter it
// knows, grouped by stream kind.
func paramsCommand(c *cli.Context) error {
	if err := mediainfo.Load(mediainfo.WithLogger(buildLogger(c.Bool("verbose")))); err != nil {
		return fmt.Errorf("error loading the MediaInfo library: %w", err)
	}
	params, err := mediainfo.InfoParameters()
	if err != nil {
		return fmt.Errorf("error querying the parameter table: %w", err)
	}
	fmt.Println(params)
	return nil
}

// scanCommand walks a directory tree, analyzes every media file in it on a
// small worker pool, and prints per-kind stream totals. With the Mongo
// flags set, every snapshot is also upserted into the catalog.
func scanCommand(c *cli.Context) error {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	errorStyle := color.New(color.FgRed)

	if c.NArg() < 1 {
		errorStyle.Printf("❌ Error: missing required argument: DIRECTORY\n\n")
		return fmt.Errorf("missing required argument: DIRECTORY")
	}
	root, err := filepath.Abs(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}

	logger := buildLogger(c.Bool("verbose"))

	if err := loadLibrary(c); err != nil {
		return err
	}

	// Connect the catalog before any analysis starts, so a bad URI fails
	// fast instead of mid-scan.
	var store *catalog.Catalog
	if uri := c.String("mongo-uri"); uri != "" {
		ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
		defer cancel()
		store, err = catalog.Connect(ctx, uri, c.String("mongo-db"), c.String("mongo-collection"),
			catalog.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("error connecting to the catalog: %w", err)
		}
		defer store.Close(c.Context)
	}

	files, err := collectMediaFiles(root)
	if err != nil {
		return fmt.Errorf("error scanning %s: %w", root, err)
	}
	if len(files) == 0 {
		regularStyle.Printf("No media files found under %s\n", root)
		return nil
	}

	sessionID := uuid.New()
	logger.Info().Str("session", sessionID.String()).Int("files", len(files)).Msg("scan started")

	bar := progressbar.Default(int64(len(files)), "Analyzing")

	// Fan the files out to a small worker pool; results are folded into
	// the totals under a mutex.
	type totals struct {
		analyzed  int
		failed    int
		videos    int
		audios    int
		subtitles int
	}
	var (
		mu       sync.Mutex
		sum      totals
		wg       sync.WaitGroup
		pathCh   = make(chan string)
		storeErr error
	)

	worker := func() {
		defer wg.Done()
		for path := range pathCh {
			info, err := mediainfo.AnalyzeFile(path)

			mu.Lock()
			if err != nil {
				sum.failed++
				logger.Warn().Str("path", path).Err(err).Msg("analysis failed")
			} else {
				sum.analyzed++
				sum.videos += len(info.VideoStreams)
				sum.audios += len(info.AudioStreams)
				sum.subtitles += len(info.SubtitleStreams)
			}
			mu.Unlock()

			if err == nil && store != nil {
				entry := catalog.NewEntry(sessionID, path, info)
				if err := store.Store(c.Context, entry); err != nil {
					mu.Lock()
					if storeErr == nil {
						storeErr = err
					}
					mu.Unlock()
				}
			}
			_ = bar.Add(1)
		}
	}

	workers := scanWorkers
	if len(files) < workers {
		workers = len(files)
	}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}
	for _, path := range files {
		pathCh <- path
	}
	close(pathCh)
	wg.Wait()
	_ = bar.Finish()

	if storeErr != nil {
		return fmt.Errorf("error storing catalog entries: %w", storeErr)
	}

	// Print the scan totals with proper pluralization
	pluralizeClient := pluralize.NewClient()
	summaryStyle.Println("\n📊 SCAN SUMMARY")
	regularStyle.Println("----------------")
	regularStyle.Printf("📁 %d ", sum.analyzed)
	valueStyle.Println(pluralizeClient.Pluralize("file", sum.analyzed, false) + " analyzed")
	if sum.failed > 0 {
		errorStyle.Printf("⚠️ %d %s not recognized\n", sum.failed, pluralizeClient.Pluralize("file", sum.failed, false))
	}
	regularStyle.Printf("🎞️ %d ", sum.videos)
	valueStyle.Println(pluralizeClient.Pluralize("video stream", sum.videos, false))
	regularStyle.Printf("🔊 %d ", sum.audios)
	valueStyle.Println(pluralizeClient.Pluralize("audio stream", sum.audios, false))
	regularStyle.Printf("💬 %d ", sum.subtitles)
	valueStyle.Println(pluralizeClient.Pluralize("subtitle track", sum.subtitles, false))
	if store != nil {
		regularStyle.Printf("🗃️ Cataloged under session ")
		valueStyle.Printf("%s\n", sessionID)
	}
	return nil
}

// main is the entry point of the application.
// It parses command-line arguments, validates input, and starts the analysis.
func main() {
	// Override the default version printer
	cli.VersionPrinter = versionPrinter

	// Create a new CLI app
	app := &cli.App{
		Name:  "mediahound",
		Usage: "A tool for inspecting media containers through MediaInfo",
		Description: "MediaHound opens media files through the native MediaInfo library " +
			"and provides detailed metadata about containers, streams, and chapters.",
		Authors: []*cli.Author{
			{
				Name: "Gian Luca Dalla Torre",
			},
		},
		Version:   Version,
		Action:    analyzeCommand,
		ArgsUsage: "MEDIA_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory where to output the results of analysis",
				Value:   filepath.Join(".", "reports"),
			},
			&cli.StringFlag{
				Name:  "library",
				Usage: "Explicit path of the MediaInfo shared library",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Save the report as JSON instead of text",
			},
			&cli.BoolFlag{
				Name:  "inform",
				Usage: "Print the native text dump instead of the report",
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: "Expose every parameter the parser found",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Print structured diagnostics while working",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "Analyze every media file under a directory",
				ArgsUsage: "DIRECTORY",
				Action:    scanCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mongo-uri",
						Usage: "MongoDB URI to catalog the scan results into",
					},
					&cli.StringFlag{
						Name:  "mongo-db",
						Usage: "MongoDB database for the catalog",
						Value: "mediahound",
					},
					&cli.StringFlag{
						Name:  "mongo-collection",
						Usage: "MongoDB collection for the catalog",
						Value: "scans",
					},
				},
			},
			{
				Name:   "params",
				Usage:  "Dump the native library's parameter table",
				Action: paramsCommand,
			},
		},
	}

	// Run the application
	if err := app.Run(os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
