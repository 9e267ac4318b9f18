package config

const (

	// Title represents the name of this tool.
	Title string = "cii2ubl"

	// Description represents a short description of this tool.
	Description string = "Converts EN 16931 Cross Industry Invoices (CII) into UBL Invoices and Credit Notes."
)

// Version represents the SemVer of the converter.
var Version = "[unset]"

// Buildtime represents the timestamp of the build.
var Buildtime = "[unset]"

// Buildhash represents a unique hash of the build.
var Buildhash = "[unset]"
