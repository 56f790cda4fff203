package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfAlgoConstruct is perf metric
	PerfAlgoConstruct = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_algo_construct",
		Help:         "perf_algo_construct provides the sample metrics of algorithm construction",
		RequiredTags: []string{"family", "provider"},
	}

	// PerfPkcs11Digest is perf metric
	PerfPkcs11Digest = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_pkcs11_digest",
		Help:         "perf_pkcs11_digest provides the sample metrics of PKCS#11 digest operations",
		RequiredTags: []string{"algo"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&PerfAlgoConstruct,
	&PerfPkcs11Digest,
}
