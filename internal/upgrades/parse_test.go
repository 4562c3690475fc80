package upgrades

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const wingetReport = "\r   - \r   \\ \r                                                                                                                        \r" +
	"Name                              Id                              Version        Available      Source\n" +
	"--------------------------------------------------------------------------------------------------------\n" +
	"Git                               Git.Git                         2.44.0         2.45.1         winget\n" +
	"Microsoft Edge                    Microsoft.Edge                  124.0.2478.80  125.0.2535.51  winget\n" +
	"Visual Studio Code                Microsoft.VisualStudioCode      1.88.1         1.89.1         winget\n" +
	"3 upgrades available.\n"

func TestParseWingetReport(t *testing.T) {
	got := Parse(wingetReport)
	require.Equal(t, []string{"Git.Git", "Microsoft.Edge", "Microsoft.VisualStudioCode"}, got)
}

func TestParseOrderPreserving(t *testing.T) {
	header := fmt.Sprintf("%-20s%s", "Id", "Version")
	report := strings.Join([]string{
		header,
		strings.Repeat("-", 30),
		fmt.Sprintf("%-20s%s", "PkgA", "1.0.0.0"),
		fmt.Sprintf("%-20s%s", "PkgB", "2.0.0.0"),
	}, "\n")

	first := Parse(report)
	require.Equal(t, []string{"PkgA", "PkgB"}, first)
	require.Equal(t, first, Parse(report))
}

func TestParseNoSeparator(t *testing.T) {
	got := Parse("No installed package found matching input criteria.\n")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestParseEmptyInput(t *testing.T) {
	require.Empty(t, Parse(""))
}

func TestParseSeparatorOnFirstLine(t *testing.T) {
	require.Empty(t, Parse(strings.Repeat("-", 40)+"\nGit  Git.Git  1.0\n"))
}

func TestParseHeaderMissingColumns(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no id column", header: "Name                Package             Version"},
		{name: "no version column", header: "Name                Id                  Release"},
		{name: "version before id", header: "Version             Id                  Name   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := tt.header + "\n" + strings.Repeat("-", 50) + "\n" + "Git                 Git.Git             2.44.0 \n"
			require.Empty(t, Parse(report))
		})
	}
}

func TestParseSkipsShortRows(t *testing.T) {
	report := strings.Join([]string{
		"Name      Id             Version   Source",
		"----------------------------------------",
		"Git       Git.Git        2.44.0    winget",
		"Short     Row",
		"",
		"Edge      Microsoft.Edge 124.0     winget",
	}, "\n")
	require.Equal(t, []string{"Git.Git", "Microsoft.Edge"}, Parse(report))
}

func TestParseSkipsRepeatedTableChrome(t *testing.T) {
	header := "Name      Id             Version   Source"
	sep := "----------------------------------------"
	report := strings.Join([]string{
		header,
		sep,
		"Git       Git.Git        2.44.0    winget",
		sep,
		header,
		"Edge      Microsoft.Edge 124.0     winget",
	}, "\r\n")
	require.Equal(t, []string{"Git.Git", "Microsoft.Edge"}, Parse(report))
}

func TestParseWideNames(t *testing.T) {
	// Two-column-wide characters in the Name column must not shift the Id slice.
	report := strings.Join([]string{
		"Name        Id               Version   Source",
		"---------------------------------------------",
		"微信         Tencent.WeChat   3.9.10    winget",
		"Café        Cafe.App         1.0       winget",
	}, "\n")
	require.Equal(t, []string{"Tencent.WeChat", "Cafe.App"}, Parse(report))
}

func TestParseStripsEscapes(t *testing.T) {
	report := "\x1b[2K" + "Name      Id             Version   Source\n" +
		"----------------------------------------\n" +
		"\x1b[0mGit       Git.Git        2.44.0    winget\n"
	require.Equal(t, []string{"Git.Git"}, Parse(report))
}

func TestParseStripsOSCProgress(t *testing.T) {
	// Taskbar progress (OSC 9;4) terminated by BEL on the header line.
	report := "\x1b]9;4;3;0\x07" + "Name      Id             Version   Source\n" +
		strings.Repeat("-", 41) + "\n" +
		"Git       Git.Git        2.44.0    winget\n" +
		"\x1b]9;4;0;0\x1b\\"
	require.Equal(t, []string{"Git.Git"}, Parse(report))
}
