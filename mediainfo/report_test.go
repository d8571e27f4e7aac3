package mediainfo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ReportTestSuite defines a test suite for the materialized container
// snapshot, exercised against the in-memory fake library.
type ReportTestSuite struct {
	suite.Suite
}

// SetupTest installs the fake library before each test.
func (s *ReportTestSuite) SetupTest() {
	restore := sampleMedia().install()
	s.T().Cleanup(restore)
}

// TestAnalyzeFile tests the open-snapshot-close convenience.
func (s *ReportTestSuite) TestAnalyzeFile() {
	info, err := AnalyzeFile("/media/sample.mkv")
	require.NoError(s.T(), err)

	s.Equal("Matroska", info.General.Format)
	s.Len(info.VideoStreams, 1)
	s.Len(info.AudioStreams, 2)
	s.Len(info.SubtitleStreams, 1)
	s.Len(info.ImageStreams, 1)
	s.Len(info.MenuStreams, 1)
}

// TestContainerInfoGeneral tests the container-level projection.
func (s *ReportTestSuite) TestContainerInfoGeneral() {
	info, err := AnalyzeFile("/media/sample.mkv")
	require.NoError(s.T(), err)

	g := info.General
	s.Equal("203902186524291758386621404849666670557", g.UniqueID)
	s.Equal("/media/sample.mkv", g.CompleteName)
	s.Equal("sample", g.FileName)
	s.Equal("mkv", g.FileExtension)
	s.Equal("Matroska", g.Format)
	s.Equal("Version 4", g.FormatVersion)
	s.Equal(int64(1234567890), g.FileSize)
	s.Equal(5400.0, g.Duration)
	s.Equal(int64(1828962), g.OverallBitRate)
	s.InDelta(23.976, g.FrameRate, 0.0001)
	s.True(g.Streamable)
	s.Equal("Sample Movie", g.Title)
	s.Equal("mkvmerge v80.0 ('Appetite') 64-bit", g.WritingApplication)
	s.Equal("libebml v1.4.4 + libmatroska v1.7.1", g.WritingLibrary)
}

// TestContainerInfoStreams tests the per-stream projections, codec names
// included.
func (s *ReportTestSuite) TestContainerInfoStreams() {
	info, err := AnalyzeFile("/media/sample.mkv")
	require.NoError(s.T(), err)

	v := info.VideoStreams[0]
	s.Equal("AVC", v.Format)
	s.Equal("AVC", v.Codec)
	s.Equal("V_MPEG4/ISO/AVC", v.CodecID)
	s.Equal(1920, v.Width)
	s.Equal(1080, v.Height)
	s.InDelta(23.976, v.FrameRate, 0.0001)
	s.Equal(5400.0, v.Duration)
	s.Equal(10, v.BitDepth)
	s.True(v.HDR)
	s.Equal("SMPTE ST 2086", v.HDRFormat)
	s.True(v.Default)

	aac := info.AudioStreams[0]
	s.Equal("AAC", aac.Codec)
	s.Equal(2, aac.Channels)
	s.Equal(48000, aac.SamplingRate)
	s.Equal(int64(192000), aac.BitRate)
	s.Equal("Lossy", aac.CompressionMode)

	ac3 := info.AudioStreams[1]
	s.Equal("AC-3", ac3.Codec)
	s.Equal(6, ac3.Channels)
	s.Equal("fr", ac3.Language)

	sub := info.SubtitleStreams[0]
	s.Equal("UTF-8", sub.Format)
	s.Equal(542, sub.ElementCount)
	s.Equal("en", sub.Language)

	img := info.ImageStreams[0]
	s.Equal("JPEG", img.Format)
	s.Equal(600, img.Width)

	menu := info.MenuStreams[0]
	require.Len(s.T(), menu.Chapters, 2)
	s.Equal(0.0, menu.Chapters[0].Position)
	s.Equal("Opening", menu.Chapters[0].Title)
	s.Equal(3600.0, menu.Chapters[1].Position)
	s.Equal("Part Two", menu.Chapters[1].Title)
}

// TestContainerInfoJSONShape tests the serialized field names the reports
// and the catalog rely on.
func (s *ReportTestSuite) TestContainerInfoJSONShape() {
	info, err := AnalyzeFile("/media/sample.mkv")
	require.NoError(s.T(), err)

	encoded, err := json.Marshal(info)
	require.NoError(s.T(), err)

	var decoded map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(encoded, &decoded))

	s.Contains(decoded, "general")
	s.Contains(decoded, "video_streams")
	s.Contains(decoded, "audio_streams")
	s.Contains(decoded, "subtitle_streams")
	s.Contains(decoded, "image_streams")
	s.Contains(decoded, "menu_streams")

	general, ok := decoded["general"].(map[string]interface{})
	require.True(s.T(), ok)
	s.Equal("Matroska", general["format"])
	s.Equal("/media/sample.mkv", general["complete_name"])
}

// TestAnalyzeFileOpenFailure tests that a refused open propagates the
// error instead of returning a half-built snapshot.
func (s *ReportTestSuite) TestAnalyzeFileOpenFailure() {
	fake := newFakeMedia()
	fake.openOK = false
	restore := fake.install()
	s.T().Cleanup(restore)

	info, err := AnalyzeFile("/media/broken.bin")
	s.Nil(info)
	s.ErrorIs(err, ErrOpenFailed)
}

// TestReportTestSuite runs the test suite.
func TestReportTestSuite(t *testing.T) {
	suite.Run(t, new(ReportTestSuite))
}
