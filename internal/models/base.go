package models

import (
	"time"

	"restUriHub/pkg/idutil"
)

// 公共字段组，各实体按需组合嵌入

// ObjId 记录主键
type ObjId struct {
	ObjId string `json:"obj_id" gorm:"column:obj_id;type:varchar(100);primaryKey"`
}

func (o ObjId) GetObjId() string {
	return o.ObjId
}

func (o *ObjId) SetObjId(id string) {
	o.ObjId = id
}

// newObjId 构造实体时即生成主键，首次写库前就可知
func newObjId() ObjId {
	return ObjId{ObjId: idutil.NewObjId()}
}

// Timestamp 创建时间、修改时间
type Timestamp struct {
	CrtDt  time.Time `json:"crt_dt" gorm:"column:crt_dt;autoCreateTime"`
	MdfyDt time.Time `json:"mdfy_dt" gorm:"column:mdfy_dt;autoUpdateTime"`
}

// Audit 审计信息：创建人、修改人、事务ID
type Audit struct {
	CrtUserId  *string `json:"crt_user_id" gorm:"column:crt_user_id;type:varchar(40)"`
	MdfyUserId *string `json:"mdfy_user_id" gorm:"column:mdfy_user_id;type:varchar(40)"`
	Tid        *string `json:"tid" gorm:"column:tid;type:varchar(100)"`
}

// Use 使用状态
type Use struct {
	UseStatCd *UseStatus `json:"use_stat_cd" gorm:"column:use_stat_cd;type:varchar(40)"`
}

// GetUseStatCd 未设置时返回空字符串
func (u Use) GetUseStatCd() string {
	if u.UseStatCd == nil {
		return ""
	}
	return string(*u.UseStatCd)
}

// RecordNote 备注信息：原因代码、转换代码
type RecordNote struct {
	RsnCd  *string `json:"rsn_cd" gorm:"column:rsn_cd;type:varchar(100)"`
	TrnsCm *string `json:"trns_cm" gorm:"column:trns_cm;type:varchar(100)"`
}
