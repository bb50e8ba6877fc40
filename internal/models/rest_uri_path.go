package models

import "fmt"

// RestUriPath REST API URI 路径段，对应表 gn_rest_uri_path
// 同一 api_id 下 path_order 唯一 (uk_gn_rest_uri_path_01)
type RestUriPath struct {
	ObjId
	ApiId      string  `json:"api_id" gorm:"column:api_id;type:varchar(100);not null;uniqueIndex:uk_gn_rest_uri_path_01,priority:1"`
	PathOrder  int     `json:"path_order" gorm:"column:path_order;not null;uniqueIndex:uk_gn_rest_uri_path_01,priority:2;check:chk_gn_rest_uri_path_order,path_order >= 0"`
	PathValue  string  `json:"path_value" gorm:"column:path_value;type:varchar(100);not null"`
	IsParamUse bool    `json:"is_param_use" gorm:"column:is_param_use;default:false"`
	ParamNm    *string `json:"param_nm" gorm:"column:param_nm;type:varchar(100)"`
	ParamTyp   *string `json:"param_typ" gorm:"column:param_typ;type:varchar(40)"`
	ParamDesc  *string `json:"param_desc" gorm:"column:param_desc;type:text"`
	ExampleVal *string `json:"example_val" gorm:"column:example_val;type:varchar(200)"`
	Timestamp
	Audit
	RecordNote
	Use
}

// TableName 指定表名
func (RestUriPath) TableName() string {
	return "gn_rest_uri_path"
}

// NewRestUriPath 创建路径实体并生成主键
func NewRestUriPath(apiId string, pathOrder int, pathValue string) *RestUriPath {
	return &RestUriPath{
		ObjId:     newObjId(),
		ApiId:     apiId,
		PathOrder: pathOrder,
		PathValue: pathValue,
	}
}

func (p RestUriPath) String() string {
	return fmt.Sprintf("RestUriPath(obj_id=%s, api_id=%s, path_order=%d, path_value=%s)",
		p.ObjId.ObjId, p.ApiId, p.PathOrder, p.PathValue)
}
