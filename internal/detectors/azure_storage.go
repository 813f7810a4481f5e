package detectors

import "github.com/iacguard/iacguard/internal/types"

const RuleAzureStorageHTTP = "azure_storage_http"

// AzureStorageHTTP flags storage accounts that explicitly disable the
// HTTPS-only transport enforcement. The provider default is secure, so only
// an explicit false fires.
func AzureStorageHTTP(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "azurerm_storage_account" {
			continue
		}
		for _, name := range []string{"enable_https_traffic_only", "https_traffic_only_enabled"} {
			v, rel, ok := attrBool(b.Body, name)
			if !ok || v {
				continue
			}
			line := lineAt(b.Body, rel)
			out = append(out, candidate(RuleAzureStorageHTTP, unit, b, rel, line,
				replaceValue(line, "true"), nil))
		}
	}
	return out
}
