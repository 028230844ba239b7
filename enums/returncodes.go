package enums

// ReturnCode is a process exit code for the command line interface.
type ReturnCode int

const (
	// ReturnClean is a clean exit.
	ReturnClean ReturnCode = iota

	// ReturnBadCommand means an unexpected command was given.
	ReturnBadCommand

	// ReturnBadFolder means a folder to execute a command in does not exist.
	ReturnBadFolder

	// ReturnBadHelpFile means the help file does not exist.
	ReturnBadHelpFile

	// ReturnBadVersion means version information cannot be determined.
	ReturnBadVersion

	// ReturnTestFailures means a test ran to completion but failed its criteria.
	ReturnTestFailures

	// ReturnNoCoverageTool means the coverage tool is not installed.
	ReturnNoCoverageTool
)

// ReturnCodes is the validated descriptor for the ReturnCode constants. The
// MustNew call enforces, at first load, that the codes stay unique and
// consecutive from zero as new ones are added.
var ReturnCodes = MustNew("ReturnCodes",
	Member{"Clean", int(ReturnClean)},
	Member{"BadCommand", int(ReturnBadCommand)},
	Member{"BadFolder", int(ReturnBadFolder)},
	Member{"BadHelpFile", int(ReturnBadHelpFile)},
	Member{"BadVersion", int(ReturnBadVersion)},
	Member{"TestFailures", int(ReturnTestFailures)},
	Member{"NoCoverageTool", int(ReturnNoCoverageTool)},
)
