// Where: internal/domain/resource/intrinsics.go
// What: Intra-template reference helpers.
package resource

// Ref builds a {"Ref": logicalID} intrinsic.
func Ref(logicalID string) map[string]any {
	return map[string]any{"Ref": logicalID}
}

// GetAtt builds a {"Fn::GetAtt": [logicalID, attribute]} intrinsic.
func GetAtt(logicalID, attribute string) map[string]any {
	return map[string]any{"Fn::GetAtt": []any{logicalID, attribute}}
}
