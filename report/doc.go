// Package report writes Fisher-analysis results as plain text tables.
//
// The output format is one header line naming every column, then one row
// per detected signal:
//
//	network_SNR <catalog parameters...> <err_ columns...> [err_sky_location]
//
// The leading SNR column uses compact notation; every other numeric
// column is fixed %.3E scientific notation, space-delimited. The
// err_sky_location column is present exactly when the analysis estimated
// both sky coordinates — absence of sky localization is signaled by the
// column's absence, never by a zero.
//
// ErrorsFileName builds the conventional result file name from the
// sub-network detector names, the population label and the network
// detection threshold. AnalyzeAndSave drives the whole loop: evaluate
// each sub-network against the catalog and write one file per
// sub-network.
//
// Errors: ErrBadResult for result/catalog mismatches; detector sentinels
// pass through from sub-network selection.
package report
