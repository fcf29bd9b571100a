// Package emptypages implements detection of pages without transcribed
// text in PAGE XML collections.
//
// A collection is a directory holding one document set, with its page
// descriptions as XML files under a fixed "page" subdirectory:
//
//	base_path/Collection_Name/page/*.xml
//
// This package provides:
//
// - Discovery of collection directories under a base path
// - A per-page emptiness check over the transcribed text content
// - Recovery of the source image filename for reporting
// - A full scan run accumulating one record per empty page
//
// Classification is deliberately conservative: a page that cannot be
// parsed is treated as non-empty and logged as a warning, so corrupt
// files never show up in the report as false positives.
//
// Main Functions:
//
// - FindCollections: discovers scannable collection directories
// - IsPageEmpty: classifies one PAGE XML file
// - ImageFilename: recovers the source image name for one file
// - Run: executes the full detection process
package emptypages
