// Package upload validates a tabular data file, submits it with a template id
// as a multipart request, and interprets the server's response into a tagged
// Outcome: either a report was generated synchronously (ReportReady) or the
// file was accepted for later processing (FileStored).
//
// Validation happens entirely before the network: extension allow-list
// (.xlsx, .xls, .csv, case-insensitive), size ceiling, and template presence.
// Any violation short-circuits the call. The submission itself runs under a
// generous fixed timeout to tolerate synchronous server-side analysis.
//
// Usage:
//
//	orchestrator := upload.NewOrchestrator(gatewayClient)
//
//	outcome, err := orchestrator.UploadPath(ctx, "sales.csv", templateID)
//	if err != nil {
//		// validation or transport failure, nothing was produced
//	}
//	if reportID, ok := outcome.ReportReady(); ok {
//		// show the report
//	} else if fileID, ok := outcome.FileStored(); ok {
//		// file accepted, no report yet
//	}
package upload
