package models

// RestUriDef REST API 定义，对应表 gn_rest_uri_def
// api_id 全局唯一，删除时通过外键级联删除其下所有 RestUriPath
type RestUriDef struct {
	ObjId
	ApiId      string      `json:"api_id" gorm:"column:api_id;type:varchar(100);not null;uniqueIndex:gn_rest_uri_def_api_id_key"`
	SiteId     string      `json:"site_id" gorm:"column:site_id;type:varchar(40);not null"`
	SrvNm      string      `json:"srv_nm" gorm:"column:srv_nm;type:varchar(40);not null"`
	MethodNm   *HttpMethod `json:"method_nm" gorm:"column:method_nm;type:varchar(10);check:gn_rest_uri_def_method_nm_check,method_nm IN ('GET', 'POST', 'PUT', 'DELETE', 'PATCH')"`
	ApiNm      *string     `json:"api_nm" gorm:"column:api_nm;type:varchar(40)"`
	ApiDesc    *string     `json:"api_desc" gorm:"column:api_desc;type:text"`
	BaseUri    *string     `json:"base_uri" gorm:"column:base_uri;type:varchar(100)"`
	VersionInf *string     `json:"version_inf" gorm:"column:version_inf;type:varchar(20)"`
	Timestamp
	Audit
	RecordNote
	Use

	// 仅用于迁移时生成外键，不做关联预加载
	UriPaths []RestUriPath `json:"-" gorm:"foreignKey:ApiId;references:ApiId;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (RestUriDef) TableName() string {
	return "gn_rest_uri_def"
}

// NewRestUriDef 创建定义实体并生成主键
func NewRestUriDef(apiId, siteId, srvNm string) *RestUriDef {
	return &RestUriDef{
		ObjId:  newObjId(),
		ApiId:  apiId,
		SiteId: siteId,
		SrvNm:  srvNm,
	}
}
