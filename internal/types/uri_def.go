package types

import (
	"time"

	"restUriHub/internal/errcode"
	"restUriHub/internal/models"
)

// RequestDefCreate 创建 REST API 定义
type RequestDefCreate struct {
	ApiId      string  `json:"api_id" binding:"required,min=1,max=100"`
	SiteId     string  `json:"site_id" binding:"required,min=1,max=40"`
	SrvNm      string  `json:"srv_nm" binding:"required,min=1,max=40"`
	MethodNm   *string `json:"method_nm"`
	ApiNm      *string `json:"api_nm" binding:"omitempty,max=40"`
	ApiDesc    *string `json:"api_desc"`
	BaseUri    *string `json:"base_uri" binding:"omitempty,max=100"`
	VersionInf *string `json:"version_inf" binding:"omitempty,max=20"`
	UseStatCd  *string `json:"use_stat_cd"`
	CrtUserId  *string `json:"crt_user_id" binding:"omitempty,max=40"`
	MdfyUserId *string `json:"mdfy_user_id" binding:"omitempty,max=40"`
	Tid        *string `json:"tid" binding:"omitempty,max=100"`
	RsnCd      *string `json:"rsn_cd" binding:"omitempty,max=100"`
	TrnsCm     *string `json:"trns_cm" binding:"omitempty,max=100"`
}

// ToModel 解析枚举字段并生成带主键的实体
func (r RequestDefCreate) ToModel() (*models.RestUriDef, error) {
	def := models.NewRestUriDef(r.ApiId, r.SiteId, r.SrvNm)
	def.ApiNm = r.ApiNm
	def.ApiDesc = r.ApiDesc
	def.BaseUri = r.BaseUri
	def.VersionInf = r.VersionInf
	def.CrtUserId = r.CrtUserId
	def.MdfyUserId = r.MdfyUserId
	def.Tid = r.Tid
	def.RsnCd = r.RsnCd
	def.TrnsCm = r.TrnsCm

	if r.MethodNm != nil && *r.MethodNm != "" {
		m, err := models.ParseHttpMethod(*r.MethodNm)
		if err != nil {
			return nil, errcode.NewValidation("%s", err.Error())
		}
		def.MethodNm = &m
	}
	if r.UseStatCd != nil && *r.UseStatCd != "" {
		s, err := models.ParseUseStatus(*r.UseStatCd)
		if err != nil {
			return nil, errcode.NewValidation("%s", err.Error())
		}
		def.UseStatCd = s.Ptr()
	}
	return def, nil
}

// ResponseDef API 定义详情
type ResponseDef struct {
	ObjId      string    `json:"obj_id"`
	ApiId      string    `json:"api_id"`
	SiteId     string    `json:"site_id"`
	SrvNm      string    `json:"srv_nm"`
	MethodNm   *string   `json:"method_nm"`
	ApiNm      *string   `json:"api_nm"`
	ApiDesc    *string   `json:"api_desc"`
	BaseUri    *string   `json:"base_uri"`
	VersionInf *string   `json:"version_inf"`
	UseStatCd  *string   `json:"use_stat_cd"`
	CrtDt      time.Time `json:"crt_dt"`
	MdfyDt     time.Time `json:"mdfy_dt"`
}

func NewResponseDef(d models.RestUriDef) ResponseDef {
	r := ResponseDef{
		ObjId:      d.GetObjId(),
		ApiId:      d.ApiId,
		SiteId:     d.SiteId,
		SrvNm:      d.SrvNm,
		ApiNm:      d.ApiNm,
		ApiDesc:    d.ApiDesc,
		BaseUri:    d.BaseUri,
		VersionInf: d.VersionInf,
		CrtDt:      d.CrtDt,
		MdfyDt:     d.MdfyDt,
	}
	if d.MethodNm != nil {
		m := d.MethodNm.String()
		r.MethodNm = &m
	}
	if d.UseStatCd != nil {
		s := d.UseStatCd.String()
		r.UseStatCd = &s
	}
	return r
}

// ResponseDefDelete 删除结果，PathCount 为级联删除的路径数量
type ResponseDefDelete struct {
	ApiId     string `json:"api_id"`
	PathCount int64  `json:"path_count"`
}
