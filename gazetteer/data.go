//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

package gazetteer

// cityMap maps native city names to the canonical English form expected
// by the weather provider. Entries cover municipalities, provincial
// capitals and other major cities.
var cityMap = map[string]string{
	"北京":   "Beijing",
	"上海":   "Shanghai",
	"广州":   "Guangzhou",
	"深圳":   "Shenzhen",
	"天津":   "Tianjin",
	"重庆":   "Chongqing",
	"成都":   "Chengdu",
	"杭州":   "Hangzhou",
	"武汉":   "Wuhan",
	"西安":   "Xi'an",
	"苏州":   "Suzhou",
	"郑州":   "Zhengzhou",
	"南京":   "Nanjing",
	"青岛":   "Qingdao",
	"沈阳":   "Shenyang",
	"大连":   "Dalian",
	"厦门":   "Xiamen",
	"福州":   "Fuzhou",
	"长沙":   "Changsha",
	"哈尔滨":  "Harbin",
	"济南":   "Jinan",
	"长春":   "Changchun",
	"石家庄":  "Shijiazhuang",
	"合肥":   "Hefei",
	"太原":   "Taiyuan",
	"南昌":   "Nanchang",
	"南宁":   "Nanning",
	"昆明":   "Kunming",
	"贵阳":   "Guiyang",
	"海口":   "Haikou",
	"乌鲁木齐": "Urumqi",
	"呼和浩特": "Hohhot",
	"银川":   "Yinchuan",
	"西宁":   "Xining",
	"兰州":   "Lanzhou",
	"拉萨":   "Lhasa",
	"宁波":   "Ningbo",
	"温州":   "Wenzhou",
	"无锡":   "Wuxi",
	"常州":   "Changzhou",
	"南通":   "Nantong",
	"徐州":   "Xuzhou",
	"扬州":   "Yangzhou",
	"珠海":   "Zhuhai",
	"汕头":   "Shantou",
	"佛山":   "Foshan",
	"东莞":   "Dongguan",
	"中山":   "Zhongshan",
	"桂林":   "Guilin",
	"洛阳":   "Luoyang",
	"烟台":   "Yantai",
	"潍坊":   "Weifang",
	"威海":   "Weihai",
	"嘉兴":   "Jiaxing",
	"绍兴":   "Shaoxing",
	"金华":   "Jinhua",
	"泉州":   "Quanzhou",
	"唐山":   "Tangshan",
	"保定":   "Baoding",
	"邯郸":   "Handan",
	"包头":   "Baotou",
	"鞍山":   "Anshan",
	"吉林":   "Jilin",
	"芜湖":   "Wuhu",
	"襄阳":   "Xiangyang",
	"宜昌":   "Yichang",
	"岳阳":   "Yueyang",
	"株洲":   "Zhuzhou",
	"湛江":   "Zhanjiang",
	"惠州":   "Huizhou",
	"柳州":   "Liuzhou",
	"遵义":   "Zunyi",
	"绵阳":   "Mianyang",
	"咸阳":   "Xianyang",
	"宝鸡":   "Baoji",
	"三亚":   "Sanya",
}

// provinceMap maps native province-level region names to their English
// form. Used as the last extraction tier when no city matched.
var provinceMap = map[string]string{
	"北京":  "Beijing",
	"天津":  "Tianjin",
	"上海":  "Shanghai",
	"重庆":  "Chongqing",
	"河北":  "Hebei",
	"山西":  "Shanxi",
	"辽宁":  "Liaoning",
	"吉林":  "Jilin",
	"黑龙江": "Heilongjiang",
	"江苏":  "Jiangsu",
	"浙江":  "Zhejiang",
	"安徽":  "Anhui",
	"福建":  "Fujian",
	"江西":  "Jiangxi",
	"山东":  "Shandong",
	"河南":  "Henan",
	"湖北":  "Hubei",
	"湖南":  "Hunan",
	"广东":  "Guangdong",
	"海南":  "Hainan",
	"四川":  "Sichuan",
	"贵州":  "Guizhou",
	"云南":  "Yunnan",
	"陕西":  "Shaanxi",
	"甘肃":  "Gansu",
	"青海":  "Qinghai",
	"台湾":  "Taiwan",
	"内蒙古": "Inner Mongolia",
	"广西":  "Guangxi",
	"西藏":  "Tibet",
	"宁夏":  "Ningxia",
	"新疆":  "Xinjiang",
	"香港":  "Hong Kong",
	"澳门":  "Macau",
}

// administrative suffixes tolerated after a native name.
var nativeSuffixes = []string{"市", "省", "自治区", "特别行政区"}
