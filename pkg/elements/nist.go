package elements

// defaultRecords returns the built-in element dataset: NIST isotope
// abundances and masses for the elements common in biomolecules, plus
// isotopically labeled variants ("2H", "13C", "15N", "18O") used by
// stable-isotope labeling workflows.
func defaultRecords() map[string]Record {
	return map[string]Record{
		"H": {
			Abundance: []float64{0.999885, 0.000115},
			Mass:      []float64{1.00782503207, 2.0141017778},
		},
		"C": {
			Abundance: []float64{0.9893, 0.0107},
			Mass:      []float64{12.0, 13.0033548378},
		},
		"N": {
			Abundance: []float64{0.99636, 0.00364},
			Mass:      []float64{14.0030740048, 15.0001088982},
		},
		"O": {
			Abundance: []float64{0.99757, 0.00038, 0.00205},
			Mass:      []float64{15.9949146196, 16.9991317, 17.999161},
		},
		"F": {
			Abundance: []float64{1.0},
			Mass:      []float64{18.99840322},
		},
		"Na": {
			Abundance: []float64{1.0},
			Mass:      []float64{22.9897692809},
		},
		"Mg": {
			Abundance: []float64{0.7899, 0.1, 0.1101},
			Mass:      []float64{23.9850417, 24.98583692, 25.982592929},
		},
		"Si": {
			Abundance: []float64{0.92223, 0.04685, 0.03092},
			Mass:      []float64{27.9769265325, 28.976494700, 29.97377017},
		},
		"P": {
			Abundance: []float64{1.0},
			Mass:      []float64{30.97376163},
		},
		"S": {
			Abundance: []float64{0.9499, 0.0075, 0.0425, 0.0001},
			Mass:      []float64{31.972071, 32.97145876, 33.9678669, 35.96708076},
		},
		"Cl": {
			Abundance: []float64{0.7576, 0.2424},
			Mass:      []float64{34.96885268, 36.96590259},
		},
		"K": {
			Abundance: []float64{0.932581, 0.000117, 0.067302},
			Mass:      []float64{38.96370668, 39.96399848, 40.96182576},
		},
		"Ca": {
			Abundance: []float64{0.96941, 0.00647, 0.00135, 0.02086, 0.00004, 0.00187},
			Mass:      []float64{39.96259098, 41.95861801, 42.9587666, 43.9554818, 45.9536926, 47.952534},
		},
		"Fe": {
			Abundance: []float64{0.05845, 0.91754, 0.02119, 0.00282},
			Mass:      []float64{53.9396105, 55.9349375, 56.935394, 57.9332756},
		},
		"Cu": {
			Abundance: []float64{0.6915, 0.3085},
			Mass:      []float64{62.9295975, 64.9277895},
		},
		"Zn": {
			Abundance: []float64{0.48268, 0.27975, 0.04102, 0.19024, 0.00631},
			Mass:      []float64{63.9291422, 65.9260334, 66.9271273, 67.9248442, 69.9253193},
		},
		"Se": {
			Abundance: []float64{0.0089, 0.0937, 0.0763, 0.2377, 0.4961, 0.0873},
			Mass:      []float64{73.9224764, 75.9192136, 76.919914, 77.9173091, 79.9165213, 81.9166994},
		},
		"Br": {
			Abundance: []float64{0.5069, 0.4931},
			Mass:      []float64{78.9183371, 80.9162906},
		},
		// Tin's natural span (112-124) exceeds MaxIsotopeLen, so its stored
		// envelope is truncated around the 120Sn mono peak.
		"Sn": {
			Abundance: []float64{0.0097, 0.0066, 0.0034, 0.1454, 0.0768, 0.2422, 0.0859, 0.3258, 0.0463, 0.0579},
			Mass: []float64{111.904818, 113.902779, 114.903342, 115.901741, 116.902952,
				117.901603, 118.903308, 119.9022016, 121.9034401, 123.9052739},
		},
		"I": {
			Abundance: []float64{1.0},
			Mass:      []float64{126.904473},
		},

		// Labeled variants. Enrichment is nominal 99%; override per
		// experiment with Update or a TOML element file.
		"2H": {
			Abundance: []float64{0.01, 0.99},
			Mass:      []float64{1.00782503207, 2.0141017778},
		},
		"13C": {
			Abundance: []float64{0.01, 0.99},
			Mass:      []float64{12.0, 13.0033548378},
		},
		"15N": {
			Abundance: []float64{0.01, 0.99},
			Mass:      []float64{14.0030740048, 15.0001088982},
		},
		"18O": {
			Abundance: []float64{0.005, 0.005, 0.99},
			Mass:      []float64{15.9949146196, 16.9991317, 17.999161},
		},
	}
}
