package leap

// Published TAI-UTC history: the USNO tai-utc.dat drift formulas through
// 1972, then whole-second steps from the IERS leap-second list (Bulletin C).
var history = []Entry{
	{MJD: 37300, Offset: 1.4228180, DriftMJD: 37300, DriftRate: 0.001296},  // 1961-01-01
	{MJD: 37512, Offset: 1.3728180, DriftMJD: 37300, DriftRate: 0.001296},  // 1961-08-01
	{MJD: 37665, Offset: 1.8458580, DriftMJD: 37665, DriftRate: 0.0011232}, // 1962-01-01
	{MJD: 38334, Offset: 1.9458580, DriftMJD: 37665, DriftRate: 0.0011232}, // 1963-11-01
	{MJD: 38395, Offset: 3.2401300, DriftMJD: 38761, DriftRate: 0.001296},  // 1964-01-01
	{MJD: 38486, Offset: 3.3401300, DriftMJD: 38761, DriftRate: 0.001296},  // 1964-04-01
	{MJD: 38639, Offset: 3.4401300, DriftMJD: 38761, DriftRate: 0.001296},  // 1964-09-01
	{MJD: 38761, Offset: 3.5401300, DriftMJD: 38761, DriftRate: 0.001296},  // 1965-01-01
	{MJD: 38820, Offset: 3.6401300, DriftMJD: 38761, DriftRate: 0.001296},  // 1965-03-01
	{MJD: 38942, Offset: 3.7401300, DriftMJD: 38761, DriftRate: 0.001296},  // 1965-07-01
	{MJD: 39004, Offset: 3.8401300, DriftMJD: 38761, DriftRate: 0.001296},  // 1965-09-01
	{MJD: 39126, Offset: 4.3131700, DriftMJD: 39126, DriftRate: 0.002592},  // 1966-01-01
	{MJD: 39887, Offset: 4.2131700, DriftMJD: 39126, DriftRate: 0.002592},  // 1968-02-01
	{MJD: 41317, Offset: 10},                                               // 1972-01-01
	{MJD: 41499, Offset: 11},                                               // 1972-07-01
	{MJD: 41683, Offset: 12},                                               // 1973-01-01
	{MJD: 42048, Offset: 13},                                               // 1974-01-01
	{MJD: 42413, Offset: 14},                                               // 1975-01-01
	{MJD: 42778, Offset: 15},                                               // 1976-01-01
	{MJD: 43144, Offset: 16},                                               // 1977-01-01
	{MJD: 43509, Offset: 17},                                               // 1978-01-01
	{MJD: 43874, Offset: 18},                                               // 1979-01-01
	{MJD: 44239, Offset: 19},                                               // 1980-01-01
	{MJD: 44786, Offset: 20},                                               // 1981-07-01
	{MJD: 45151, Offset: 21},                                               // 1982-07-01
	{MJD: 45516, Offset: 22},                                               // 1983-07-01
	{MJD: 46247, Offset: 23},                                               // 1985-07-01
	{MJD: 47161, Offset: 24},                                               // 1988-01-01
	{MJD: 47892, Offset: 25},                                               // 1990-01-01
	{MJD: 48257, Offset: 26},                                               // 1991-01-01
	{MJD: 48804, Offset: 27},                                               // 1992-07-01
	{MJD: 49169, Offset: 28},                                               // 1993-07-01
	{MJD: 49534, Offset: 29},                                               // 1994-07-01
	{MJD: 50083, Offset: 30},                                               // 1996-01-01
	{MJD: 50630, Offset: 31},                                               // 1997-07-01
	{MJD: 51179, Offset: 32},                                               // 1999-01-01
	{MJD: 53736, Offset: 33},                                               // 2006-01-01
	{MJD: 54832, Offset: 34},                                               // 2009-01-01
	{MJD: 56109, Offset: 35},                                               // 2012-07-01
	{MJD: 57204, Offset: 36},                                               // 2015-07-01
	{MJD: 57754, Offset: 37},                                               // 2017-01-01
}
